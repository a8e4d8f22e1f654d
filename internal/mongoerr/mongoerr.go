// Package mongoerr handles MongoDB driver errors.
//
// It classifies driver errors (duplicate keys, validation failures,
// missing documents, timeouts) and converts them into client-facing
// *errs.HTTPError values without leaking driver details.
package mongoerr

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// Code is the category of a driver error.
type Code int

const (
	Other Code = iota
	DuplicateKey
	DocumentValidationFailure
	NoDocuments
	Timeout
	Network
)

func (c Code) String() string {
	switch c {
	case DuplicateKey:
		return "duplicate_key"
	case DocumentValidationFailure:
		return "document_validation_failure"
	case NoDocuments:
		return "no_documents"
	case Timeout:
		return "timeout"
	case Network:
		return "network"
	default:
		return "other"
	}
}

// Server error codes the service cares about.
const (
	serverCodeDocumentValidation = 121
	serverCodeMaxTimeMSExpired   = 50
)

// Error is a classified driver error bound to the collection it came from.
type Error struct {
	Code       Code
	ServerCode int
	Message    string
	Collection string
	driverErr  error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("mongo %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("mongo %s on %s: %s", e.Code, e.Collection, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Wrap classifies err and records the collection it came from. It returns
// nil for a nil error.
func Wrap(err error, collection string) error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	return Convert(err, collection)
}

// Convert classifies a raw driver error.
func Convert(err error, collection string) *Error {
	converted := &Error{
		Code:       MapCode(err),
		Message:    err.Error(),
		Collection: collection,
		driverErr:  err,
	}

	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		converted.ServerCode = firstServerCode(err)
	}

	return converted
}

// MapCode maps a driver error onto a Code.
func MapCode(err error) Code {
	switch {
	case err == nil:
		return Other
	case errors.Is(err, mongo.ErrNoDocuments):
		return NoDocuments
	case mongo.IsDuplicateKeyError(err):
		return DuplicateKey
	case hasServerCode(err, serverCodeDocumentValidation):
		return DocumentValidationFailure
	case mongo.IsTimeout(err),
		errors.Is(err, context.DeadlineExceeded),
		hasServerCode(err, serverCodeMaxTimeMSExpired):
		return Timeout
	case mongo.IsNetworkError(err):
		return Network
	default:
		return Other
	}
}

// ErrCode reports the Code of an already classified error, or Other.
func ErrCode(err error) Code {
	var mongoErr *Error
	if errors.As(err, &mongoErr) {
		return mongoErr.Code
	}
	return Other
}

func hasServerCode(err error, code int) bool {
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		return serverErr.HasErrorCode(code)
	}
	return false
}

func firstServerCode(err error) int {
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		if len(writeErr.WriteErrors) > 0 {
			return writeErr.WriteErrors[0].Code
		}
		if writeErr.WriteConcernError != nil {
			return writeErr.WriteConcernError.Code
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return int(cmdErr.Code)
	}

	return 0
}
