package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fintrack/internal/handlers"
)

// TraceIDHeader carries the trace ID on requests and responses.
const TraceIDHeader = "X-Trace-ID"

// RequestID assigns every request a trace ID, preserving one supplied by
// an upstream proxy. The ID is stored on the context under
// handlers.TraceIDContextKey and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(handlers.TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or "" before RequestID has run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(handlers.TraceIDContextKey).(string)
	return traceID
}
