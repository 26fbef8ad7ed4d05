package handler

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/config"
	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/repository"
	"github.com/fincommittee/platform/internal/settings"
	"github.com/fincommittee/platform/internal/utils"
)

// AuthHandler bundles dependencies for the authentication endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Members  *repository.MemberRepo
	Tokens   *repository.TokenRepo
	Settings *settings.Store
}

func NewAuthHandler(cfg config.Config, m *repository.MemberRepo, t *repository.TokenRepo, s *settings.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Members: m, Tokens: t, Settings: s}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}
type updateProfileReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type memberPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
type authResp struct {
	Member  memberPart `json:"member"`
	Access  tokenPart  `json:"access"`
	Refresh tokenPart  `json:"refresh"`
}

// Register creates a member and returns a token pair immediately. The role
// comes from the default_role setting; public registration never yields an
// admin account.
func (h *AuthHandler) Register(c echo.Context) error {
	if !h.Settings.Bool("allow_registration", true) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "registration disabled"})
	}

	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}
	if !utils.ValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}
	if ok, reason := utils.CheckPassword(req.Password); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	role := h.Settings.String("default_role", model.RoleFinance)
	if role == model.RoleAdmin || !model.ValidRole(role) {
		role = model.RoleFinance
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.Members.Create(ctx, req.Name, req.Email, req.Password, role, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create member failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, id, role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, id, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		Member:  memberPart{ID: id, Name: req.Name, Email: req.Email, Role: role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw goes back to the client
	})
}

// Login verifies credentials and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Members.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load member failed"})
	}
	if !m.IsActive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account deactivated"})
	}
	if !utils.VerifyPassword(m.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, m.ID, m.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, m.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}
	_ = h.Members.TouchLastLogin(ctx, m.ID)

	return c.JSON(http.StatusOK, authResp{
		Member:  memberPart{ID: m.ID, Name: m.Name, Email: m.Email, Role: m.Role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	memberID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	m, err := h.Members.GetByID(ctx, memberID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load member failed"})
	}
	if !m.IsActive {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "account deactivated"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, m.ID, m.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, m.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Member:  memberPart{ID: m.ID, Name: m.Name, Email: m.Email, Role: m.Role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp},
	})
}

// RefreshAccess issues a new access token off a valid refresh token without
// rotating the refresh token itself.
func (h *AuthHandler) RefreshAccess(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}
	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := reqCtx(c)
	defer cancel()

	memberID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	}
	m, err := h.Members.GetByID(ctx, memberID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load member failed"})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, m.ID, m.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout revokes the presented refresh token, or every token of the
// authenticated member when no token is supplied.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)

	ctx, cancel := reqCtx(c)
	defer cancel()

	if raw := strings.TrimSpace(req.RefreshToken); raw != "" {
		if err := h.Tokens.RevokeByHash(ctx, utils.HashRefreshRaw(raw)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "revoke failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
	}
	if err := h.Tokens.RevokeAllForMember(ctx, currentMemberID(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "revoke failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}

// Me returns the authenticated member's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Members.GetByID(ctx, currentMemberID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load member failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateMe updates name/email and optionally rotates the password after
// verifying the current one.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Members.GetByID(ctx, currentMemberID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load member failed"})
	}

	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" {
		name = m.Name
	}
	if email == "" {
		email = m.Email
	} else if !utils.ValidEmail(email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email"})
	}

	if err := h.Members.UpdateProfile(ctx, m.ID, name, email); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	if req.NewPassword != "" {
		if !utils.VerifyPassword(m.PasswordHash, req.CurrentPassword) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current password incorrect"})
		}
		if ok, reason := utils.CheckPassword(req.NewPassword); !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
		}
		if err := h.Members.UpdatePassword(ctx, m.ID, req.NewPassword, h.Cfg.BcryptCost); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update password failed"})
		}
		_ = h.Tokens.RevokeAllForMember(ctx, m.ID)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}
