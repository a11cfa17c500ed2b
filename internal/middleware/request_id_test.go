package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID_GeneratesTraceID(t *testing.T) {
	e := echo.New()
	middleware := RequestID()

	handler := middleware(func(c echo.Context) error {
		traceID := GetTraceID(c)
		assert.NotEmpty(t, traceID)
		_, err := uuid.Parse(traceID)
		assert.NoError(t, err, "generated trace ID should be a UUID")
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler(c))
	assert.NotEmpty(t, rec.Header().Get(TraceIDHeader))
}

func TestRequestID_PreservesIncomingTraceID(t *testing.T) {
	e := echo.New()
	middleware := RequestID()

	handler := middleware(func(c echo.Context) error {
		assert.Equal(t, "upstream-trace-id", GetTraceID(c))
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(TraceIDHeader, "upstream-trace-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, "upstream-trace-id", rec.Header().Get(TraceIDHeader))
}

func TestGetTraceID_MissingReturnsEmpty(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))
}
