package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fincommittee/platform/internal/model"
	"github.com/fincommittee/platform/internal/repository"
)

// EventHandler exposes event CRUD.
type EventHandler struct {
	Events *repository.EventRepo
}

func NewEventHandler(e *repository.EventRepo) *EventHandler {
	return &EventHandler{Events: e}
}

type eventReq struct {
	Name     string  `json:"name"`
	Date     string  `json:"date"` // YYYY-MM-DD, optional
	Budget   float64 `json:"budget"`
	Footfall int     `json:"footfall"`
	Revenue  float64 `json:"revenue"`
}

func (r *eventReq) validate() (*time.Time, string, bool) {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, "name required", false
	}
	if r.Budget < 0 || r.Revenue < 0 || r.Footfall < 0 {
		return nil, "budget/revenue/footfall must be non-negative", false
	}
	if r.Date == "" {
		return nil, "", true
	}
	d, err := time.ParseInLocation("2006-01-02", r.Date, time.UTC)
	if err != nil {
		return nil, "date must be YYYY-MM-DD", false
	}
	return &d, "", true
}

// List returns all events, most recent first.
func (h *EventHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	events, err := h.Events.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list events failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events, "count": len(events)})
}

// Get returns one event.
func (h *EventHandler) Get(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Create inserts an event.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	date, reason, ok := req.validate()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	e := model.Event{
		Name:     req.Name,
		Date:     date,
		Budget:   req.Budget,
		Footfall: req.Footfall,
		Revenue:  req.Revenue,
	}
	if err := h.Events.Create(ctx, &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}
	return c.JSON(http.StatusCreated, e)
}

// Update rewrites an event's mutable fields.
func (h *EventHandler) Update(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	date, reason, ok := req.validate()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": reason})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load event failed"})
	}

	e.Name = req.Name
	e.Date = date
	e.Budget = req.Budget
	e.Footfall = req.Footfall
	e.Revenue = req.Revenue

	if err := h.Events.Update(ctx, &e); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update event failed"})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete removes an event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, ok := idParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		if err == repository.ErrEventNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete event failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "event deleted"})
}
