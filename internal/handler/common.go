// Package handler contains the HTTP endpoints. Handlers bind JSON bodies
// into request structs, call repositories or the reporting core, and reply
// with echo.Map payloads; errors always carry an "error" key.
package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/middleware"
)

// reqCtx derives a bounded context for database work from the request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// idParam parses a numeric path parameter.
func idParam(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// intQuery parses an optional integer query parameter, returning def when
// absent or malformed.
func intQuery(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// currentMemberID returns the authenticated member's id from the context.
func currentMemberID(c echo.Context) uint64 {
	id, _ := c.Get(middleware.CtxMemberID).(uint64)
	return id
}

// currentRole returns the authenticated member's role from the context.
func currentRole(c echo.Context) string {
	role, _ := c.Get(middleware.CtxRole).(string)
	return role
}
