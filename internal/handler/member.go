package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/repository"
)

// MemberHandler exposes the admin-only member management endpoints.
type MemberHandler struct {
	Members *repository.MemberRepo
	Tokens  *repository.TokenRepo
}

func NewMemberHandler(m *repository.MemberRepo, t *repository.TokenRepo) *MemberHandler {
	return &MemberHandler{Members: m, Tokens: t}
}

type updateRoleReq struct {
	Role string `json:"role"`
}

// List returns every member, active or not.
func (h *MemberHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	members, err := h.Members.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list members failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"members": members, "count": len(members)})
}

// UpdateRole changes a member's role. Demoting the last active admin is
// refused, as is changing your own role.
func (h *MemberHandler) UpdateRole(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid member id"})
	}
	if id == currentMemberID(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot change your own role"})
	}

	var req updateRoleReq
	if err := c.Bind(&req); err != nil || !model.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be admin or finance"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	target, err := h.Members.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
	}
	if target.Role == model.RoleAdmin && req.Role != model.RoleAdmin {
		admins, err := h.Members.CountActiveAdmins(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count admins failed"})
		}
		if admins <= 1 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cannot demote the last admin"})
		}
	}

	if err := h.Members.UpdateRole(ctx, id, req.Role); err != nil {
		if err == repository.ErrMemberNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update role failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "role updated"})
}

// ToggleActive flips a member's active flag. Deactivating yourself or the
// last active admin is refused; deactivation also revokes refresh tokens.
func (h *MemberHandler) ToggleActive(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid member id"})
	}
	if id == currentMemberID(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot deactivate yourself"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	target, err := h.Members.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
	}

	if target.IsActive && target.Role == model.RoleAdmin {
		admins, err := h.Members.CountActiveAdmins(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count admins failed"})
		}
		if admins <= 1 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cannot deactivate the last admin"})
		}
	}

	if err := h.Members.SetActive(ctx, id, !target.IsActive); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update member failed"})
	}
	if target.IsActive {
		_ = h.Tokens.RevokeAllForMember(ctx, id)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "member updated", "is_active": !target.IsActive})
}

// Delete soft-deletes a member by deactivating the account. The same
// guards as ToggleActive apply.
func (h *MemberHandler) Delete(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid member id"})
	}
	if id == currentMemberID(c) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot delete yourself"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	target, err := h.Members.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
	}
	if target.Role == model.RoleAdmin {
		admins, err := h.Members.CountActiveAdmins(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "count admins failed"})
		}
		if target.IsActive && admins <= 1 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete the last admin"})
		}
	}

	if err := h.Members.SetActive(ctx, id, false); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete member failed"})
	}
	_ = h.Tokens.RevokeAllForMember(ctx, id)
	return c.JSON(http.StatusOK, echo.Map{"message": "member deactivated"})
}
