package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dstanic/tasknest/internal/service"
	"github.com/dstanic/tasknest/pkg/eventlog"
	"github.com/dstanic/tasknest/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	evl         *eventlog.Logger
}

func NewAuthHandler(authService *service.AuthService, evl *eventlog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, evl: evl}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	resp, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		} else {
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
