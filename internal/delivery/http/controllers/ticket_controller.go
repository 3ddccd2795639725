package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"algosphere/internal/delivery/http/helpers"
	"algosphere/internal/delivery/http/middleware"
	"algosphere/internal/domain"
)

// BuyTicketRequest is the request body for POST /events/{eventID}/tickets.
// PaymentTxID references the buyer's confirmed on-chain payment to the club.
type BuyTicketRequest struct {
	PaymentTxID string `json:"payment_txid"`
}

// Validate implements Validator.
func (b BuyTicketRequest) Validate() []string {
	var errs []string
	if b.PaymentTxID == "" {
		errs = append(errs, "payment_txid is required")
	}
	return errs
}

// BuyTicketResponse is the response body for a successful purchase.
type BuyTicketResponse struct {
	EventID int64  `json:"event_id"`
	AssetID uint64 `json:"asset_id"`
	Sold    uint64 `json:"sold"`
}

// VerifyTicketResponse is the response body for GET /events/{eventID}/verify/{address}.
type VerifyTicketResponse struct {
	EventID  int64  `json:"event_id"`
	Attendee string `json:"attendee"`
	Valid    bool   `json:"valid"`
}

type TicketController struct {
	Logger  *slog.Logger
	Service domain.TicketService
}

func NewTicketController(logger *slog.Logger, svc domain.TicketService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// BuyTicket godoc
// @Summary Buy a ticket
// @Description Exchanges a confirmed on-chain payment for one ticket unit transferred to the authenticated buyer's wallet. The payment must go to the event's club, match the price exactly, and originate from the buyer. The buyer must have opted in to the ticket asset. There is no per-buyer limit; only aggregate capacity applies.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param purchase body BuyTicketRequest true "Payment reference"
// @Success 200 {object} helpers.APIResponse "data contains the asset id and updated sold count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: sold_out or conflict (payment already used)"
// @Failure 422 {object} helpers.APIResponse "error.code: payment_rejected (wrong payee, amount, or sender)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/tickets [post]
func (c *TicketController) BuyTicket(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathEventID(w, r)
	if !ok {
		return
	}
	var req BuyTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	buyer, ok := middleware.WalletAddressFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.BuyTicket(r.Context(), eventID, buyer, req.PaymentTxID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrSoldOut):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeSoldOut, "event sold out")
		case errors.Is(err, domain.ErrWrongPayee),
			errors.Is(err, domain.ErrWrongAmount),
			errors.Is(err, domain.ErrPaymentSenderMismatch),
			errors.Is(err, domain.ErrPaymentNotConfirmed):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodePaymentRejected, err.Error())
		case errors.Is(err, domain.ErrPaymentAlreadyUsed):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "payment transaction already used")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BuyTicketResponse{
		EventID: event.ID,
		AssetID: event.AssetID,
		Sold:    event.Sold,
	})
}

// VerifyTicket godoc
// @Summary Verify ticket ownership
// @Description Returns whether the attendee holds at least one unit of the event's ticket asset. Read-only; safe to call unboundedly often (e.g. at check-in).
// @Tags tickets
// @Produce json
// @Param eventID path int true "Event ID"
// @Param address path string true "Attendee wallet address"
// @Success 200 {object} helpers.APIResponse "data contains the validity flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/verify/{address} [get]
func (c *TicketController) VerifyTicket(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathEventID(w, r)
	if !ok {
		return
	}
	attendee, ok := pathAddress(w, r)
	if !ok {
		return
	}
	valid, err := c.Service.VerifyTicket(r.Context(), eventID, attendee)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VerifyTicketResponse{
		EventID:  eventID,
		Attendee: attendee,
		Valid:    valid,
	})
}
