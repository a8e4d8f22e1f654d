package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/employee-service/internal/config"
	"github.com/deppfellow/employee-service/internal/errs"
	"github.com/deppfellow/employee-service/internal/mongoerr"
	"github.com/deppfellow/employee-service/internal/server"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func newGlobal() *GlobalMiddlewares {
	log := zerolog.Nop()
	return NewGlobalMiddlewares(&server.Server{
		Config: &config.Config{Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}}},
		Logger: &log,
	})
}

func handleError(t *testing.T, method string, err error) (*httptest.ResponseRecorder, errs.HTTPError) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, "/", nil), rec)
	newGlobal().GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "http error passes through",
			err:         errs.NewNotFoundError("Employee not found", nil),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Employee not found",
		},
		{
			name:        "unknown route",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Route not found",
		},
		{
			name:        "wrong method",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "METHOD_NOT_ALLOWED",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "other echo errors keep their status",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too big"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "REQUEST_ENTITY_TOO_LARGE",
			wantMessage: "too big",
		},
		{
			name: "duplicate key",
			err: pkgerrors.Wrap(mongoerr.Wrap(mongo.WriteException{
				WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000"}},
			}, "employees"), "inserting employee"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "EMPLOYEE_ALREADY_EXISTS",
			wantMessage: "An employee with this identifier already exists",
		},
		{
			name:        "driver failure is hidden",
			err:         pkgerrors.Wrap(mongo.CommandError{Code: 13, Message: "not authorized on trial"}, "finding employees"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_SERVER_ERROR",
			wantMessage: errs.InternalServerErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, http.MethodGet, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestGlobalErrorHandler_HeadHasNoBody(t *testing.T) {
	rec, _ := handleError(t, http.MethodHead, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	}, RequestID())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", seen)
	assert.Equal(t, "upstream-id", rec.Header().Get(RequestIDHeader))
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NotNil(t, GetLogger(c))
}
