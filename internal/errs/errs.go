// Package errs defines the error types returned to API clients.
//
// Every failure leaves the service as an *HTTPError so clients always see
// the same JSON shape: a human readable `error` message, a machine friendly
// `code`, the HTTP `status` and optional field-level `errors`.
package errs
