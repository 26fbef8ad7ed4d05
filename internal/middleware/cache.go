package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/fincommittee/platform/internal/config"
)

// cachedResponse is the Redis payload: status plus body. Headers are not
// replayed; the analytics endpoints this wraps always emit JSON.
type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// bodyCapture tees the response body into a buffer, up to limit bytes.
// Oversized responses pass through uncached.
type bodyCapture struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	written  int64
	limit    int64
	overflow bool
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.written += int64(len(b))
	if w.limit > 0 && w.written > w.limit {
		w.overflow = true
	} else {
		w.buf.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// NewRedisCache caches successful responses of the configured methods in
// Redis, keyed by route and query string. With caching disabled or no Redis
// client it degrades to a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if json.Unmarshal(raw, &cached) == nil {
					c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(cached.Status)
					_, _ = c.Response().Write(cached.Body)
					return nil
				}
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: int64(cfg.MaxBodyBytes)}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && !cw.overflow {
				payload, err := json.Marshal(cachedResponse{Status: cw.status, Body: cw.buf.Bytes()})
				if err == nil {
					// detached context: the request may already be done
					_ = rdb.SetEx(context.Background(), key, payload, ttl).Err()
				}
			}
			return nil
		}
	}
}

func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
