package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dstanic/tasknest/internal/service"
	"github.com/dstanic/tasknest/pkg/eventlog"
	"github.com/dstanic/tasknest/pkg/validator"
)

type UserHandler struct {
	userService *service.UserService
	evl         *eventlog.Logger
}

func NewUserHandler(userService *service.UserService, evl *eventlog.Logger) *UserHandler {
	return &UserHandler{userService: userService, evl: evl}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoUsers) {
			writeError(w, http.StatusBadRequest, "No users found")
		} else {
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateCreateUser(input.Username, input.Email, input.Password); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.userService.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exist!")
		case errors.Is(err, service.ErrInvalidUserData):
			writeError(w, http.StatusBadRequest, "Invalid user data received")
		default:
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": fmt.Sprintf("New user %s created", user.Username),
	})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateUpdateUser(input.ID, input.Username, input.Email, input.Active); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "User not found")
		return
	}

	user, err := h.userService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusBadRequest, "User not found")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Duplicate email")
		default:
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s updated", user.Username),
	})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.ID == "" {
		writeError(w, http.StatusBadRequest, "User ID Required")
		return
	}

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "User not found")
		return
	}

	user, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserHasTasks):
			writeError(w, http.StatusBadRequest, "User has assigned tasks")
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, http.StatusBadRequest, "User not found")
		default:
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, fmt.Sprintf("Username %s with ID %s deleted", user.Username, user.ID.Hex()))
}
