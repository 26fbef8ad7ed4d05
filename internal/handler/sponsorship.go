package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/queue"
	"github.com/fincommittee/platform/internal/repository"
	"github.com/fincommittee/platform/internal/service"
)

// SponsorshipHandler exposes sponsorship CRUD plus the status rollup. When
// a sponsorship transitions to paid, the handler bumps the sponsor's cached
// investment total and publishes a SponsorshipPaidEvent; a broker outage is
// logged by the publisher and otherwise ignored.
type SponsorshipHandler struct {
	Sponsorships *repository.SponsorshipRepo
	Sponsors     *repository.SponsorRepo
	Events       *repository.EventRepo
	Analytics    *repository.AnalyticsRepo
}

func NewSponsorshipHandler(sp *repository.SponsorshipRepo, s *repository.SponsorRepo, e *repository.EventRepo, a *repository.AnalyticsRepo) *SponsorshipHandler {
	return &SponsorshipHandler{Sponsorships: sp, Sponsors: s, Events: e, Analytics: a}
}

type sponsorshipCreateReq struct {
	SponsorID uint64  `json:"sponsor_id"`
	EventID   uint64  `json:"event_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	ROI       float64 `json:"roi"`
}

type sponsorshipUpdateReq struct {
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
	ROI    *float64 `json:"roi"`
}

// List returns sponsorships, optionally filtered by sponsor_id, event_id
// and status query parameters.
func (h *SponsorshipHandler) List(c echo.Context) error {
	f := repository.Filter{
		SponsorID: uint64(intQuery(c, "sponsor_id", 0)),
		EventID:   uint64(intQuery(c, "event_id", 0)),
		Status:    c.QueryParam("status"),
	}
	if f.Status != "" && !model.ValidStatus(f.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status filter"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	ships, err := h.Sponsorships.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list sponsorships failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sponsorships": ships, "count": len(ships)})
}

// Get returns one sponsorship.
func (h *SponsorshipHandler) Get(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsorship id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sp, err := h.Sponsorships.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrSponsorshipNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsorship not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsorship failed"})
	}
	return c.JSON(http.StatusOK, sp)
}

// BySponsor returns all sponsorships of one sponsor.
func (h *SponsorshipHandler) BySponsor(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsor id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Sponsors.GetByID(ctx, id); err != nil {
		if err == repository.ErrSponsorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsor failed"})
	}
	ships, err := h.Sponsorships.List(ctx, repository.Filter{SponsorID: id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list sponsorships failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sponsorships": ships, "count": len(ships)})
}

// ByEvent returns all sponsorships of one event.
func (h *SponsorshipHandler) ByEvent(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Events.GetByID(ctx, id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event failed"})
	}
	ships, err := h.Sponsorships.List(ctx, repository.Filter{EventID: id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list sponsorships failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"sponsorships": ships, "count": len(ships)})
}

// Create links a sponsor to an event. At most one sponsorship may exist per
// (sponsor, event) pair.
func (h *SponsorshipHandler) Create(c echo.Context) error {
	var req sponsorshipCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.SponsorID == 0 || req.EventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sponsor_id and event_id required"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	if req.Status == "" {
		req.Status = model.StatusNegotiating
	}
	if !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	sponsor, err := h.Sponsors.GetByID(ctx, req.SponsorID)
	if err != nil {
		if err == repository.ErrSponsorNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsor not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsor failed"})
	}
	event, err := h.Events.GetByID(ctx, req.EventID)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event failed"})
	}

	sp := model.Sponsorship{
		SponsorID: req.SponsorID,
		EventID:   req.EventID,
		Amount:    req.Amount,
		Status:    req.Status,
		ROI:       req.ROI,
	}
	if err := h.Sponsorships.Create(ctx, &sp); err != nil {
		if err == repository.ErrDuplicateSponsorship {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create sponsorship failed"})
	}
	sp.SponsorName, sp.EventName = sponsor.Name, event.Name

	if sp.Status == model.StatusPaid {
		h.recordPayment(c, sp)
	}
	return c.JSON(http.StatusCreated, sp)
}

// Update rewrites amount, status and roi. Only fields present in the body
// change; transitioning into paid triggers the payment side effects.
func (h *SponsorshipHandler) Update(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsorship id"})
	}
	var req sponsorshipUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	sp, err := h.Sponsorships.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrSponsorshipNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsorship not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load sponsorship failed"})
	}
	wasPaid := sp.Status == model.StatusPaid

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
		}
		sp.Amount = *req.Amount
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
		}
		sp.Status = *req.Status
	}
	if req.ROI != nil {
		sp.ROI = *req.ROI
	}

	if err := h.Sponsorships.Update(ctx, &sp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update sponsorship failed"})
	}

	if !wasPaid && sp.Status == model.StatusPaid {
		h.recordPayment(c, sp)
	}
	return c.JSON(http.StatusOK, sp)
}

// Delete removes a sponsorship.
func (h *SponsorshipHandler) Delete(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid sponsorship id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Sponsorships.Delete(ctx, id); err != nil {
		if err == repository.ErrSponsorshipNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sponsorship not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete sponsorship failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "sponsorship deleted"})
}

// Stats returns the per-status sponsorship rollup.
func (h *SponsorshipHandler) Stats(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	buckets, err := h.Analytics.StatusBreakdown(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load stats failed"})
	}

	byStatus := echo.Map{}
	var total int
	var totalAmount float64
	for _, b := range buckets {
		byStatus[b.Status] = echo.Map{"count": b.Count, "total_amount": b.TotalAmount}
		total += b.Count
		totalAmount += b.TotalAmount
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_sponsorships": total,
		"total_amount":       totalAmount,
		"by_status":          byStatus,
	})
}

// recordPayment applies the paid side effects: bump the sponsor's cached
// total and publish the broker event. Failures are non-fatal.
func (h *SponsorshipHandler) recordPayment(c echo.Context, sp model.Sponsorship) {
	ctx, cancel := reqCtx(c)
	defer cancel()

	_ = h.Sponsors.AddInvested(ctx, sp.SponsorID, sp.Amount)
	_ = service.PublishSponsorshipPaid(ctx, queue.SponsorshipPaidEvent{
		SponsorshipID: sp.ID,
		SponsorID:     sp.SponsorID,
		SponsorName:   sp.SponsorName,
		EventID:       sp.EventID,
		EventName:     sp.EventName,
		Amount:        sp.Amount,
		ROI:           sp.ROI,
		PaidBy:        currentMemberID(c),
		PaidAt:        time.Now().UTC().Format(time.RFC3339),
	})
}
