package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"algosphere/internal/delivery/http/helpers"
	"algosphere/internal/delivery/http/middleware"
	"algosphere/internal/domain"
)

// CreateEventRequest is the request body for POST /events. Date is a Unix
// timestamp; price is in microAlgos.
type CreateEventRequest struct {
	Name        string `json:"name"`
	Venue       string `json:"venue"`
	Date        int64  `json:"date"`
	Price       uint64 `json:"price"`
	TicketCount uint64 `json:"ticket_count"`
}

// Validate implements Validator. Business rules (future date, price, capacity)
// are enforced by the service; only structural requirements live here.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name is required")
	}
	if c.Venue == "" {
		errs = append(errs, "venue is required")
	}
	if c.Date == 0 {
		errs = append(errs, "date is required")
	}
	return errs
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListResponse is the response body for GET /events.
type EventListResponse struct {
	Events     []*domain.Event        `json:"events"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// EventCountResponse is the response body for GET /events/count.
type EventCountResponse struct {
	Total int64 `json:"total"`
}

type EventController struct {
	Logger   *slog.Logger
	Events   domain.EventService
	Registry domain.RegistryService
}

func NewEventController(logger *slog.Logger, events domain.EventService, registry domain.RegistryService) *EventController {
	return &EventController{
		Logger:   logger,
		Events:   events,
		Registry: registry,
	}
}

// CreateEvent godoc
// @Summary Create a ticketed event
// @Description Creates an event owned by the authenticated club. A ticket asset with supply equal to ticket_count is minted on-chain; the returned event carries its asset id and a fresh, never-reused event id.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (past date, zero price, capacity out of range)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (caller is not a registered club)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	address, ok := middleware.WalletAddressFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Events.CreateEvent(r.Context(), address, req.Name, req.Venue, req.Date, req.Price, req.TicketCount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAuthorized):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only registered clubs can create events")
		case errors.Is(err, domain.ErrInvalidSchedule),
			errors.Is(err, domain.ErrInvalidPrice),
			errors.Is(err, domain.ErrInvalidCapacity):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEventByID godoc
// @Summary Get event details
// @Description Returns all event attributes: owning club, name, venue, date, price, total, sold, and the ticket asset id.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathEventID(w, r)
	if !ok {
		return
	}
	event, err := c.Registry.GetEventDetails(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination metadata"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Registry.ListEvents(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetTotalEvents godoc
// @Summary Get the total number of events ever created
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the total"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/count [get]
func (c *EventController) GetTotalEvents(w http.ResponseWriter, r *http.Request) {
	total, err := c.Registry.GetTotalEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, EventCountResponse{Total: total})
}

// pathEventID extracts and validates the {eventID} path value. On failure it
// writes a 400 response and returns ok=false.
func pathEventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("eventID")
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid eventID")
		return 0, false
	}
	return id, true
}
