package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPanicRecovery_RecoversAndReturns500(t *testing.T) {
	e := echo.New()
	middleware := PanicRecovery()

	handler := middleware(func(c echo.Context) error {
		panic("something went badly wrong")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-panic")

	assert.NotPanics(t, func() {
		_ = handler(c)
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_001")
	assert.Contains(t, rec.Body.String(), "trace-panic")
	assert.NotContains(t, rec.Body.String(), "something went badly wrong")
}

func TestPanicRecovery_PassesThroughNormalRequests(t *testing.T) {
	e := echo.New()
	middleware := PanicRecovery()

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
