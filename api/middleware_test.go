package api

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"coolstream/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLoggedRouter wires middleware in the same order as main: logging first, then Register.
func newLoggedRouter(buf *bytes.Buffer) *mux.Router {
	r := utils.NewRouter()
	r.Use(LoggingMiddleware(slog.New(slog.NewTextHandler(buf, nil))))
	Register(r, Handlers{}, nil, nil)
	return r
}

func TestLoggingCarriesCallerRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "abc123", rec.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `msg="http request"`)
	assert.Contains(t, buf.String(), "request_id=abc123")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLoggingCarriesGeneratedRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newLoggedRouter(&buf)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	id := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, buf.String(), "request_id="+id)
}

func TestLoggingInsideRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logged := LoggingMiddleware(slog.New(slog.NewTextHandler(&buf, nil)))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))
	h := RequestIDMiddleware(logged)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "inner-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "request_id=inner-1")
	assert.Contains(t, buf.String(), "status=418")
}
