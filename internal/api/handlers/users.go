package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rohits-web03/filesmanager/internal/api/middleware"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/rohits-web03/filesmanager/internal/utils"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func userResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email}
}

type createUserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /users
// CreateUser godoc
// @Summary Register a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body createUserInput true "Credentials"
// @Success 201 {object} UserResponse
// @Failure 400 {object} utils.ErrorPayload "Missing email, Missing password or Already exist"
// @Router /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	input, err := decodeBody[createUserInput](r)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid body")
		return
	}
	user, err := h.users.Create(r.Context(), input.Email, input.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, userResponse(user))
}

// GET /users/me
// GetMe godoc
// @Summary Current user
// @Tags Users
// @Produce json
// @Param X-Token header string true "Session token"
// @Success 200 {object} UserResponse
// @Failure 401 {object} utils.ErrorPayload
// @Router /users/me [get]
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Me(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, userResponse(user))
}
