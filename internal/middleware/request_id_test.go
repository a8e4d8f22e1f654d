package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_ReplacesUnusableIDs(t *testing.T) {
	e := echo.New()
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	}, RequestID())

	tests := []struct {
		name string
		id   string
		keep bool
	}{
		{name: "uuid", id: "0f8fad5b-d9cb-469f-a165-70867728950e", keep: true},
		{name: "dotted token", id: "lb-1.req_42:7", keep: true},
		{name: "max length", id: strings.Repeat("a", MaxRequestIDLength), keep: true},
		{name: "too long", id: strings.Repeat("a", MaxRequestIDLength+1)},
		{name: "spaces", id: "hello world"},
		{name: "json fragment", id: `x","level":"error`},
		{name: "non ascii", id: "ид-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.id)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.id, seen)
				return
			}
			assert.NotEqual(t, tt.id, seen)
			_, err := uuid.Parse(seen)
			require.NoError(t, err)
		})
	}
}
