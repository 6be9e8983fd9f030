package handlers

import (
	"net/http"

	"github.com/friendlink/friendlink/internal/services"
	"github.com/friendlink/friendlink/pkg/logger"
)

// UserHandler handles HTTP requests related to user accounts.
type UserHandler struct {
	Service *services.UserService
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

// GetUsersHandler returns every registered user.
func (h *UserHandler) GetUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		logger.Log.WithError(err).Error("Failed to fetch users")
		respondError(w, http.StatusInternalServerError, "Error fetching users", err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}
