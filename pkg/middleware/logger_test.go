package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stockwise/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(NewRequestLoggerMiddleware(log))
	e.GET("/ping", func(c echo.Context) error {
		log.FromContext(c.Request().Context()).Info("inside handler")
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "inside handler", entries[0].Message)
		assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
		assert.Equal(t, "request", entries[1].Message)
		assert.EqualValues(t, http.StatusOK, entries[1].ContextMap()["status"])
	}
}

func TestCORSMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(NewCORSMiddleware([]string{"http://localhost:5173"}))
	e.POST("/api/chat", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
