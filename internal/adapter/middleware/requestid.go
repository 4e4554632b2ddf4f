package middleware

import (
	"context"

	"donation-inventory/pkg/id"

	"github.com/labstack/echo/v4"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID keeps a well-formed incoming X-Request-Id, otherwise issues a
// new one. The request header, the response header and the context all
// carry the same id.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if !id.Valid(rid) {
				rid = id.New()
			}
			req.Header.Set(echo.HeaderXRequestID, rid)
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDKey, rid)))
			return next(c)
		}
	}
}

func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
