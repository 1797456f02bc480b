package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rohits-web03/filesmanager/internal/api/services"
	"github.com/rohits-web03/filesmanager/internal/utils"
)

type Handler struct {
	app            services.AppService
	auth           services.AuthService
	users          services.UserService
	files          services.FileService
	log            *slog.Logger
	maxUploadBytes int64
}

func New(svc *services.Container, maxUploadBytes int64, log *slog.Logger) *Handler {
	return &Handler{
		app:            svc.App,
		auth:           svc.Auth,
		users:          svc.Users,
		files:          svc.Files,
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
}

// writeError maps service errors onto their status and message. Anything
// unexpected is logged and reported as a bare 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *services.AppError
	if !errors.As(err, &appErr) {
		h.log.Error("unhandled error", "method", r.Method, "path", r.URL.Path, "error", err)
		utils.ErrorResponse(w, http.StatusInternalServerError, services.MsgInternal)
		return
	}
	if appErr.HTTPCode >= http.StatusInternalServerError {
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	utils.ErrorResponse(w, appErr.HTTPCode, appErr.Message)
}

// decodeBody reads a JSON body into a T. An empty body decodes as the zero
// value so that field validation reports what is missing. Anything that is
// not a JSON object of the expected shape, or exceeds the size limit, is an
// error.
func decodeBody[T any](r *http.Request) (T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		var zero T
		if errors.Is(err, io.EOF) {
			return zero, nil
		}
		return zero, err
	}
	return v, nil
}
