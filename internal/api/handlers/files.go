package handlers

import (
	"net/http"
	"strconv"

	"github.com/rohits-web03/filesmanager/internal/api/middleware"
	"github.com/rohits-web03/filesmanager/internal/api/services"
	"github.com/rohits-web03/filesmanager/internal/models"
	"github.com/rohits-web03/filesmanager/internal/utils"
)

type uploadInput struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID models.ParentID `json:"parentId" swaggertype:"string"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

// POST /files
// UploadFile godoc
// @Summary Create a folder or upload a file
// @Description Folders are metadata only. Files and images carry base64 data that is written to disk before the record is created.
// @Tags Files
// @Accept json
// @Produce json
// @Param X-Token header string true "Session token"
// @Param body body uploadInput true "File description"
// @Success 201 {object} models.File
// @Failure 400 {object} utils.ErrorPayload
// @Failure 401 {object} utils.ErrorPayload
// @Failure 500 {object} utils.ErrorPayload
// @Router /files [post]
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	input, err := decodeBody[uploadInput](r)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid body")
		return
	}

	file, err := h.files.Upload(r.Context(), middleware.UserID(r.Context()), services.UploadInput{
		Name:     input.Name,
		Type:     input.Type,
		ParentID: input.ParentID,
		IsPublic: input.IsPublic,
		Data:     input.Data,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, file)
}

// GET /files/{id}
// GetFile godoc
// @Summary Show one of the caller's files
// @Tags Files
// @Produce json
// @Param X-Token header string true "Session token"
// @Param id path string true "File id"
// @Success 200 {object} models.File
// @Failure 401 {object} utils.ErrorPayload
// @Failure 404 {object} utils.ErrorPayload
// @Router /files/{id} [get]
func (h *Handler) GetFile(w http.ResponseWriter, r *http.Request) {
	file, err := h.files.Show(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, file)
}

// GET /files
// ListFiles godoc
// @Summary List the caller's files under a parent, newest first, 20 per page
// @Tags Files
// @Produce json
// @Param X-Token header string true "Session token"
// @Param parentId query string false "Parent folder id, 0 for root"
// @Param page query int false "Zero based page"
// @Success 200 {array} models.File
// @Failure 401 {object} utils.ErrorPayload
// @Router /files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 0
	}

	files, err := h.files.List(r.Context(), middleware.UserID(r.Context()), models.ParentID(q.Get("parentId")), page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, files)
}

// PUT /files/{id}/publish
// PublishFile godoc
// @Summary Make a file public
// @Tags Files
// @Produce json
// @Param X-Token header string true "Session token"
// @Param id path string true "File id"
// @Success 200 {object} models.File
// @Failure 401 {object} utils.ErrorPayload
// @Failure 404 {object} utils.ErrorPayload
// @Router /files/{id}/publish [put]
func (h *Handler) PublishFile(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, true)
}

// PUT /files/{id}/unpublish
// UnpublishFile godoc
// @Summary Make a file private
// @Tags Files
// @Produce json
// @Param X-Token header string true "Session token"
// @Param id path string true "File id"
// @Success 200 {object} models.File
// @Failure 401 {object} utils.ErrorPayload
// @Failure 404 {object} utils.ErrorPayload
// @Router /files/{id}/unpublish [put]
func (h *Handler) UnpublishFile(w http.ResponseWriter, r *http.Request) {
	h.setPublic(w, r, false)
}

func (h *Handler) setPublic(w http.ResponseWriter, r *http.Request, public bool) {
	file, err := h.files.SetPublic(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"), public)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, file)
}

// GET /files/{id}/data
// GetFileData godoc
// @Summary Download file content
// @Description Public files are readable by anyone. Private files only by their owner; everyone else gets 404.
// @Tags Files
// @Produce octet-stream
// @Param X-Token header string false "Session token"
// @Param id path string true "File id"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorPayload "A folder doesn't have content"
// @Failure 404 {object} utils.ErrorPayload
// @Router /files/{id}/data [get]
func (h *Handler) GetFileData(w http.ResponseWriter, r *http.Request) {
	content, err := h.files.Data(r.Context(), middleware.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", content.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(content.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content.Data)
}
