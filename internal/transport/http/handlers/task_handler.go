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

type TaskHandler struct {
	taskService *service.TaskService
	evl         *eventlog.Logger
}

func NewTaskHandler(taskService *service.TaskService, evl *eventlog.Logger) *TaskHandler {
	return &TaskHandler{taskService: taskService, evl: evl}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoTasks) {
			writeError(w, http.StatusBadRequest, "No tasks found")
		} else {
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateCreateTask(input.User, input.Title, input.Description); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	userID, err := primitive.ObjectIDFromHex(input.User)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Task data received")
		return
	}

	_, err = h.taskService.Create(r.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleTaken):
			writeError(w, http.StatusConflict, "Duplicate task title")
		case errors.Is(err, service.ErrInvalidTaskData):
			writeError(w, http.StatusBadRequest, "Invalid Task data received")
		default:
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "New Task created",
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateUpdateTask(input.ID, input.User, input.Title, input.Description, input.Completed); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Task not found")
		return
	}

	userID, err := primitive.ObjectIDFromHex(input.User)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid Task data received")
		return
	}

	task, err := h.taskService.Update(r.Context(), id, userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			writeError(w, http.StatusBadRequest, "Task not found")
		case errors.Is(err, service.ErrTitleTaken):
			writeError(w, http.StatusConflict, "Duplicate task title")
		default:
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, fmt.Sprintf("'%s' updated", task.Title))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.ID == "" {
		writeError(w, http.StatusBadRequest, "Task ID required")
		return
	}

	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Task not found")
		return
	}

	task, err := h.taskService.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			writeError(w, http.StatusBadRequest, "Task not found")
		} else {
			reportServerError(w, r, h.evl, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, fmt.Sprintf("Task '%s' with ID %s deleted", task.Title, task.ID.Hex()))
}
