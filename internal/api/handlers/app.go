package handlers

import (
	"net/http"

	"github.com/rohits-web03/filesmanager/internal/utils"
)

// GET /status
// GetStatus godoc
// @Summary Report store availability
// @Tags App
// @Produce json
// @Success 200 {object} services.Status
// @Router /status [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	utils.JSONResponse(w, http.StatusOK, h.app.Status(r.Context()))
}

// GET /stats
// GetStats godoc
// @Summary Count users and files
// @Tags App
// @Produce json
// @Success 200 {object} services.Stats
// @Failure 500 {object} utils.ErrorPayload
// @Router /stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.app.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, stats)
}
