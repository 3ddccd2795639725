package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/algorand/go-algorand-sdk/v2/types"

	"algosphere/internal/delivery/http/helpers"
	"algosphere/internal/delivery/http/middleware"
	"algosphere/internal/domain"
)

// RegisterClubRequest is the request body for POST /clubs. The contact is
// used for the welcome email only and is never stored on-chain.
type RegisterClubRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Validate implements Validator.
func (r RegisterClubRequest) Validate() []string {
	var errs []string
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// RegisterClubSuccessResponse is the success response envelope for POST /clubs (201).
type RegisterClubSuccessResponse struct {
	Data  *domain.Club      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ClubNameResponse is the response body for GET /clubs/{address}.
type ClubNameResponse struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// ClubRegisteredResponse is the response body for GET /clubs/{address}/registered.
type ClubRegisteredResponse struct {
	Address    string `json:"address"`
	Registered bool   `json:"registered"`
}

type ClubController struct {
	Logger  *slog.Logger
	Service domain.RegistryService
}

func NewClubController(logger *slog.Logger, svc domain.RegistryService) *ClubController {
	return &ClubController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a club
// @Description Registers the authenticated wallet address as a club organization. Each address can register exactly once; the record is immutable afterwards. The contact is only used for an off-chain welcome email.
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param club body RegisterClubRequest true "Club data"
// @Success 201 {object} controllers.RegisterClubSuccessResponse "data contains the registered club"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clubs [post]
func (c *ClubController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterClubRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	address, ok := middleware.WalletAddressFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	club, err := c.Service.Register(r.Context(), address, req.Name, req.Contact)
	if err != nil {
		if errors.Is(err, domain.ErrClubAlreadyRegistered) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "club already registered")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, club)
}

// GetClubName godoc
// @Summary Get a club's registered name
// @Tags clubs
// @Produce json
// @Param address path string true "Club wallet address"
// @Success 200 {object} helpers.APIResponse "data contains address and name"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clubs/{address} [get]
func (c *ClubController) GetClubName(w http.ResponseWriter, r *http.Request) {
	address, ok := pathAddress(w, r)
	if !ok {
		return
	}
	name, err := c.Service.GetClubName(r.Context(), address)
	if err != nil {
		if errors.Is(err, domain.ErrClubNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "club not registered")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ClubNameResponse{Address: address, Name: name})
}

// IsRegistered godoc
// @Summary Check whether an address is a registered club
// @Description Always succeeds; an unregistered address yields registered=false.
// @Tags clubs
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} helpers.APIResponse "data contains address and registered flag"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /clubs/{address}/registered [get]
func (c *ClubController) IsRegistered(w http.ResponseWriter, r *http.Request) {
	address, ok := pathAddress(w, r)
	if !ok {
		return
	}
	registered, err := c.Service.IsClubRegistered(r.Context(), address)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ClubRegisteredResponse{Address: address, Registered: registered})
}

// pathAddress extracts and validates the {address} path value. On failure it
// writes a 400 response and returns ok=false.
func pathAddress(w http.ResponseWriter, r *http.Request) (string, bool) {
	address := r.PathValue("address")
	if address == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing address")
		return "", false
	}
	if _, err := types.DecodeAddress(address); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid algorand address")
		return "", false
	}
	return address, true
}
