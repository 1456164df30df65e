package middleware

import (
	"stockwise/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRequestLoggerMiddleware logs one line per request through zap and
// stores a request-scoped logger (tagged with the request id) in the request
// context for the handlers below it.
func NewRequestLoggerMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	contextLogger := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			reqLog := log.With(logger.StringField("request_id", id))
			req := c.Request()
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))
			return next(c)
		}
	}

	requestLog := middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			reqLog := log.FromContext(c.Request().Context())
			if v.Error != nil {
				reqLog.Error("request failed",
					logger.StringField("method", v.Method),
					logger.StringField("uri", v.URI),
					logger.IntField("status", v.Status),
					logger.Field("latency", v.Latency),
					logger.ErrorField(v.Error))
				return nil
			}
			reqLog.Info("request",
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.Field("latency", v.Latency))
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return contextLogger(requestLog(next))
	}
}

// NewCORSMiddleware allows the browser frontend served from origins to call
// the API.
func NewCORSMiddleware(origins []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	})
}
