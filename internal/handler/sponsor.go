package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/repository"
	"github.com/fincommittee/platform/internal/utils"
)

// SponsorHandler exposes sponsor CRUD.
type SponsorHandler struct {
	Sponsors *repository.SponsorRepo
}

func NewSponsorHandler(s *repository.SponsorRepo) *SponsorHandler {
	return &SponsorHandler{Sponsors: s}
}

type sponsorReq struct {
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

func (r *sponsorReq) validate() (string, bool) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" {
		return "name required", false
	}
	if r.Email != "" && !utils.ValidEmail(r.Email) {
		return "invalid email", false
	}
	if !utils.ValidPhone(r.Phone) {
		return "invalid phone number", false
	}
	return "", true
}

// List returns all sponsors ordered by name.
func (h *SponsorHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	sponsors, err := h.Sponsors.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list sponsors failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sponsors": sponsors, "count": len(sponsors)})
}

// Get returns one sponsor.
func (h *SponsorHandler) Get(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsor id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Sponsors.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrSponsorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsor failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// Create inserts a sponsor.
func (h *SponsorHandler) Create(c echo.Context) error {
	var req sponsorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if reason, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s := model.Sponsor{
		Name:          req.Name,
		Industry:      strings.TrimSpace(req.Industry),
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         req.Email,
		Phone:         strings.TrimSpace(req.Phone),
	}
	if err := h.Sponsors.Create(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create sponsor failed"})
	}
	return c.JSON(http.StatusCreated, s)
}

// Update rewrites a sponsor's mutable fields.
func (h *SponsorHandler) Update(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsor id"})
	}
	var req sponsorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if reason, ok := req.validate(); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	s, err := h.Sponsors.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrSponsorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsor failed"})
	}

	s.Name = req.Name
	s.Industry = strings.TrimSpace(req.Industry)
	s.ContactPerson = strings.TrimSpace(req.ContactPerson)
	s.Email = req.Email
	s.Phone = strings.TrimSpace(req.Phone)

	if err := h.Sponsors.Update(ctx, &s); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update sponsor failed"})
	}
	return c.JSON(http.StatusOK, s)
}

// Delete removes a sponsor. Sponsorships referencing it cascade at the
// schema level.
func (h *SponsorHandler) Delete(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsor id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Sponsors.Delete(ctx, id); err != nil {
		if err == repository.ErrSponsorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete sponsor failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "sponsor deleted"})
}
