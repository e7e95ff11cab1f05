package middleware

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger is the global structured logger instance used throughout the application.
var Logger *slog.Logger

type contextKey string

const (
	RequestIDKey contextKey = "request_id"
	UserIDKey    contextKey = "user_id"
	TraceIDKey   contextKey = "trace_id"
)

// ctxHandler adds the request, user and trace IDs found in the context to
// every record.
type ctxHandler struct {
	slog.Handler
}

var contextAttrs = []struct {
	key  contextKey
	name string
}{
	{RequestIDKey, "request_id"},
	{UserIDKey, "user_id"},
	{TraceIDKey, "trace_id"},
}

func (h *ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, a := range contextAttrs {
		if v, ok := ctx.Value(a.key).(string); ok && v != "" {
			r.AddAttrs(slog.String(a.name, v))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ctxHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ctxHandler) WithGroup(name string) slog.Handler {
	return &ctxHandler{h.Handler.WithGroup(name)}
}

// NewLogger builds the application logger: JSON in production, text
// elsewhere. level is one of debug, info, warn or error; anything else is info.
func NewLogger(env, level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(env) {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(&ctxHandler{handler})
}

func init() {
	Logger = NewLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"), os.Stdout)
}

// ContextMiddleware copies the request ID, trace ID and (when already known)
// user ID from Fiber locals into the user context, so services log them
// without access to the Fiber context. AuthRequired adds the user ID itself
// because it runs later.
func ContextMiddleware() fiber.Handler {
	locals := []struct {
		local string
		key   contextKey
	}{
		{"requestid", RequestIDKey},
		{"traceID", TraceIDKey},
		{"userID", UserIDKey},
	}
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for _, l := range locals {
			if v, ok := c.Locals(l.local).(string); ok && v != "" {
				ctx = context.WithValue(ctx, l.key, v)
			}
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// StructuredLogger logs one line per request. Server errors are logged at
// error level even when the handler already rendered the envelope; client
// errors at warn.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()

		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		level, msg := requestLevel(status, err)
		Logger.LogAttrs(c.UserContext(), level, msg, attrs...)
		return err
	}
}

func requestLevel(status int, err error) (slog.Level, string) {
	switch {
	case err != nil, status >= fiber.StatusInternalServerError:
		return slog.LevelError, "request failed"
	case status >= fiber.StatusBadRequest:
		return slog.LevelWarn, "request rejected"
	default:
		return slog.LevelInfo, "request processed"
	}
}
