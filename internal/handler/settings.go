package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/repository"
	"github.com/fincommittee/platform/internal/settings"
)

// SettingsHandler exposes the admin-only runtime settings endpoints,
// including backup/restore round-trips and the system info snapshot.
type SettingsHandler struct {
	Store        *settings.Store
	Cfg          config.Config
	Members      *repository.MemberRepo
	Sponsors     *repository.SponsorRepo
	Events       *repository.EventRepo
	Sponsorships *repository.SponsorshipRepo
}

func NewSettingsHandler(s *settings.Store, cfg config.Config, m *repository.MemberRepo, sp *repository.SponsorRepo, e *repository.EventRepo, ships *repository.SponsorshipRepo) *SettingsHandler {
	return &SettingsHandler{Store: s, Cfg: cfg, Members: m, Sponsors: sp, Events: e, Sponsorships: ships}
}

// List returns every current setting.
func (h *SettingsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"settings":     h.Store.Snapshot(),
		"last_updated": time.Now().UTC().Format(time.RFC3339),
	})
}

// Update applies the provided key/value pairs. Unknown keys are rejected
// and nothing is applied when any key fails.
func (h *SettingsHandler) Update(c echo.Context) error {
	var body map[string]interface{}
	if err := c.Bind(&body); err != nil || len(body) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	current := h.Store.Snapshot()
	for key := range body {
		if _, ok := current[key]; !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown setting: " + key})
		}
	}
	for key, value := range body {
		h.Store.Set(key, value)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":          "settings updated",
		"updated_settings": body,
		"all_settings":     h.Store.Snapshot(),
		"updated_at":       time.Now().UTC().Format(time.RFC3339),
	})
}

// Reset restores all settings to their defaults.
func (h *SettingsHandler) Reset(c echo.Context) error {
	h.Store.Reset()
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "settings reset to defaults",
		"settings": h.Store.Snapshot(),
		"reset_at": time.Now().UTC().Format(time.RFC3339),
	})
}

// Backup returns the current settings wrapped with backup metadata so the
// payload can be fed straight back into Restore.
func (h *SettingsHandler) Backup(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	createdBy := ""
	if m, err := h.Members.GetByID(ctx, currentMemberID(c)); err == nil {
		createdBy = m.Name
	}
	return c.JSON(http.StatusOK, echo.Map{
		"settings": h.Store.Snapshot(),
		"backup_info": echo.Map{
			"created_at": time.Now().UTC().Format(time.RFC3339),
			"created_by": createdBy,
			"version":    "1.0",
		},
	})
}

type restoreReq struct {
	Settings map[string]interface{} `json:"settings"`
}

// Restore applies a backup payload. Keys outside the known set are skipped
// rather than rejected, so old backups keep working after a key is retired.
func (h *SettingsHandler) Restore(c echo.Context) error {
	var req restoreReq
	if err := c.Bind(&req); err != nil || req.Settings == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "backup data is required"})
	}

	restored := 0
	for key, value := range req.Settings {
		if h.Store.Set(key, value) {
			restored++
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":           "settings restored",
		"restored_settings": restored,
		"current_settings":  h.Store.Snapshot(),
		"restored_at":       time.Now().UTC().Format(time.RFC3339),
	})
}

// SystemInfo reports database statistics, application metadata and the
// security-relevant settings in one document.
func (h *SettingsHandler) SystemInfo(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	memberCount, err := h.Members.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load system info failed"})
	}
	activeMembers, err := h.Members.CountActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load system info failed"})
	}
	activeAdmins, err := h.Members.CountActiveAdmins(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load system info failed"})
	}
	sponsorCount, err := h.Sponsors.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load system info failed"})
	}
	eventCount, err := h.Events.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load system info failed"})
	}
	sponsorshipCount, err := h.Sponsorships.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load system info failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"database": echo.Map{
			"total_members":      memberCount,
			"active_members":     activeMembers,
			"admin_members":      activeAdmins,
			"total_sponsors":     sponsorCount,
			"total_events":       eventCount,
			"total_sponsorships": sponsorshipCount,
		},
		"application": echo.Map{
			"version":     "1.0.0",
			"environment": h.Cfg.Env,
		},
		"security": echo.Map{
			"password_min_length":      8,
			"session_timeout_minutes":  h.Store.Int("session_timeout", 30),
			"max_login_attempts":       h.Store.Int("max_login_attempts", 5),
			"lockout_duration_minutes": h.Store.Int("lockout_duration", 15),
		},
		"current_settings": h.Store.Snapshot(),
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	})
}
