package http

import (
	"fmt"
	"net/http"
	"time"

	"donation-inventory/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type RouterConfig struct {
	Logger           zerolog.Logger
	CORSAllowOrigins []string
	// nil disables idempotent replay
	Redis          *redis.Client
	IdempotencyTTL time.Duration
}

func NewRouter(h *Handler, dh *DonationHandler, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = jsonErrorHandler(cfg.Logger)

	origins := cfg.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(
		echomw.Recover(),
		middleware.RequestID(),
		middleware.RequestLogger(cfg.Logger),
		echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:  origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderXRequestID, middleware.HeaderIdempotencyKey},
			ExposeHeaders: []string{echo.HeaderXRequestID},
		}),
		echomw.Gzip(),
	)

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/health", h.Health)

	g := api.Group("/donations")
	if cfg.Redis != nil {
		g.Use(middleware.Idempotency(cfg.Redis, cfg.IdempotencyTTL, cfg.Logger))
	}
	g.GET("", dh.List)
	g.POST("", dh.Create)
	g.GET("/:id", dh.Get)
	g.PUT("/:id", dh.Update)
	g.DELETE("/:id", dh.Delete)

	return e
}

// jsonErrorHandler keeps the {"error": ...} shape for errors raised by echo
// itself (unknown route, wrong method, panics).
func jsonErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if code < http.StatusInternalServerError {
				msg = fmt.Sprint(he.Message)
			}
		}
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("request_id", middleware.RequestIDFromContext(c.Request().Context())).
				Msg("unhandled error")
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(code)
		} else {
			werr = c.JSON(code, ErrorResponse{Error: msg})
		}
		if werr != nil {
			log.Warn().Err(werr).Msg("write error response")
		}
	}
}
