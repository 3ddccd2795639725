package controllers

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"algosphere/internal/delivery/http/helpers"
	"algosphere/internal/domain"
)

// ChallengeRequest is the request body for POST /auth/challenge.
type ChallengeRequest struct {
	Address string `json:"address"`
}

// Validate implements Validator.
func (c ChallengeRequest) Validate() []string {
	var errs []string
	if c.Address == "" {
		errs = append(errs, "address is required")
	}
	return errs
}

// ChallengeResponse is the response body for POST /auth/challenge. The nonce
// must be signed with the wallet's key and presented to POST /auth/login.
type ChallengeResponse struct {
	Nonce string `json:"nonce"`
}

// LoginRequest is the request body for POST /auth/login. Signature is the
// base64-encoded ed25519 signature of the nonce bytes.
type LoginRequest struct {
	Address   string `json:"address"`
	Nonce     string `json:"nonce"`
	Signature string `json:"signature"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Address == "" {
		errs = append(errs, "address is required")
	}
	if l.Nonce == "" {
		errs = append(errs, "nonce is required")
	}
	if l.Signature == "" {
		errs = append(errs, "signature is required")
	}
	return errs
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Challenge godoc
// @Summary Request a login challenge
// @Description Issues a short-lived nonce for the given wallet address. Signing the nonce with the wallet's key proves control of the address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChallengeRequest true "Wallet address"
// @Success 200 {object} helpers.APIResponse "data contains the nonce"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/challenge [post]
func (c *AuthController) Challenge(w http.ResponseWriter, r *http.Request) {
	var req ChallengeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	nonce, err := c.Service.RequestChallenge(r.Context(), req.Address)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAddress) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid algorand address")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ChallengeResponse{Nonce: nonce})
}

// Login godoc
// @Summary Exchange a signed challenge for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Signed challenge"
// @Success 200 {object} helpers.APIResponse "data contains the session token"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (bad challenge or signature)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	signature, err := base64.StdEncoding.DecodeString(req.Signature)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "signature must be base64")
		return
	}
	token, err := c.Service.Login(r.Context(), req.Address, req.Nonce, signature)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAddress):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid algorand address")
		case errors.Is(err, domain.ErrInvalidChallenge), errors.Is(err, domain.ErrInvalidSignature):
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token})
}
