package handlers

import (
	"net/http"

	"github.com/rohits-web03/filesmanager/internal/api/middleware"
	"github.com/rohits-web03/filesmanager/internal/utils"
)

type TokenResponse struct {
	Token string `json:"token"`
}

// GET /connect
// Connect godoc
// @Summary Sign in with Basic credentials
// @Description Exchanges "Authorization: Basic base64(email:password)" for a session token valid for 24 hours.
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Basic credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} utils.ErrorPayload
// @Router /connect [get]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	token, err := h.auth.Connect(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, TokenResponse{Token: token})
}

// GET /disconnect
// Disconnect godoc
// @Summary Sign out
// @Description Drops the session named by X-Token. Succeeds for unknown or expired tokens too.
// @Tags Auth
// @Param X-Token header string false "Session token"
// @Success 204
// @Router /disconnect [get]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Disconnect(r.Context(), r.Header.Get(middleware.TokenHeader)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
