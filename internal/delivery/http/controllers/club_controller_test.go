package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algosphere/internal/delivery/http/helpers"
	"algosphere/internal/delivery/http/middleware"
	"algosphere/internal/domain"
)

// envelope mirrors helpers.APIResponse for decoding test responses.
type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func authedRequest(method, target, body, address string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(middleware.SetWalletAddress(req.Context(), address))
}

func TestClubController_Register(t *testing.T) {
	address := testAddr(1)

	t.Run("success", func(t *testing.T) {
		svc := &fakeRegistryService{
			registerResult: &domain.Club{Address: address, Name: "Tech Club", CreatedAt: time.Now()},
		}
		ctrl := NewClubController(testLogger, svc)

		req := authedRequest(http.MethodPost, "/clubs", `{"name":"Tech Club","contact":"organizer@campus.edu"}`, address)
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Nil(t, env.Error)
		assert.Equal(t, address, svc.lastRegister.address)
		assert.Equal(t, "Tech Club", svc.lastRegister.name)
		assert.Equal(t, "organizer@campus.edu", svc.lastRegister.contact)
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := NewClubController(testLogger, &fakeRegistryService{})

		req := authedRequest(http.MethodPost, "/clubs", `{"contact":"x@y.z"}`, address)
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, env.Error.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		ctrl := NewClubController(testLogger, &fakeRegistryService{})

		req := authedRequest(http.MethodPost, "/clubs", `{"name":"Tech Club","surprise":true}`, address)
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no wallet in context", func(t *testing.T) {
		ctrl := NewClubController(testLogger, &fakeRegistryService{})

		req := httptest.NewRequest(http.MethodPost, "/clubs", strings.NewReader(`{"name":"Tech Club"}`))
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("already registered", func(t *testing.T) {
		svc := &fakeRegistryService{registerErr: domain.ErrClubAlreadyRegistered}
		ctrl := NewClubController(testLogger, svc)

		req := authedRequest(http.MethodPost, "/clubs", `{"name":"Tech Club"}`, address)
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, helpers.ErrCodeConflict, env.Error.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		svc := &fakeRegistryService{registerErr: assert.AnError}
		ctrl := NewClubController(testLogger, svc)

		req := authedRequest(http.MethodPost, "/clubs", `{"name":"Tech Club"}`, address)
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestClubController_GetClubName(t *testing.T) {
	address := testAddr(1)

	t.Run("success", func(t *testing.T) {
		svc := &fakeRegistryService{clubName: "Tech Club"}
		ctrl := NewClubController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/clubs/"+address, nil)
		req.SetPathValue("address", address)
		rec := httptest.NewRecorder()
		ctrl.GetClubName(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		var data ClubNameResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Tech Club", data.Name)
		assert.Equal(t, address, data.Address)
	})

	t.Run("not registered", func(t *testing.T) {
		svc := &fakeRegistryService{clubNameErr: domain.ErrClubNotFound}
		ctrl := NewClubController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/clubs/"+address, nil)
		req.SetPathValue("address", address)
		rec := httptest.NewRecorder()
		ctrl.GetClubName(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed address", func(t *testing.T) {
		ctrl := NewClubController(testLogger, &fakeRegistryService{})

		req := httptest.NewRequest(http.MethodGet, "/clubs/not-an-address", nil)
		req.SetPathValue("address", "not-an-address")
		rec := httptest.NewRecorder()
		ctrl.GetClubName(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestClubController_IsRegistered(t *testing.T) {
	address := testAddr(1)

	tests := []struct {
		name       string
		registered bool
	}{
		{"registered", true},
		{"unregistered", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRegistryService{registered: tt.registered}
			ctrl := NewClubController(testLogger, svc)

			req := httptest.NewRequest(http.MethodGet, "/clubs/"+address+"/registered", nil)
			req.SetPathValue("address", address)
			rec := httptest.NewRecorder()
			ctrl.IsRegistered(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope(t, rec)
			var data ClubRegisteredResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, tt.registered, data.Registered)
		})
	}
}
