package api

import (
	"log/slog"
	"net/http"

	_ "github.com/rohits-web03/filesmanager/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/filesmanager/internal/api/handlers"
	"github.com/rohits-web03/filesmanager/internal/api/middleware"
	"github.com/rs/cors"
)

func SetupRouter(h *handlers.Handler, sessions middleware.SessionResolver, corsOptions cors.Options, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(corsOptions)

	requireSession := middleware.RequireSession(sessions, log)
	optionalSession := middleware.OptionalSession(sessions)
	protected := func(fn http.HandlerFunc) http.Handler {
		return requireSession(fn)
	}

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /status", h.GetStatus)
	mux.HandleFunc("GET /stats", h.GetStats)
	mux.HandleFunc("POST /users", h.CreateUser)
	mux.HandleFunc("GET /connect", h.Connect)
	mux.HandleFunc("GET /disconnect", h.Disconnect)
	mux.Handle("GET /files/{id}/data", optionalSession(http.HandlerFunc(h.GetFileData)))
	mux.HandleFunc("GET /docs/", httpSwagger.WrapHandler)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("GET /users/me", protected(h.GetMe))
	mux.Handle("POST /files", protected(h.UploadFile))
	mux.Handle("GET /files", protected(h.ListFiles))
	mux.Handle("GET /files/{id}", protected(h.GetFile))
	mux.Handle("PUT /files/{id}/publish", protected(h.PublishFile))
	mux.Handle("PUT /files/{id}/unpublish", protected(h.UnpublishFile))

	log.Debug("router initialized")
	handler := c.Handler(mux)
	handler = middleware.Logger(log)(handler)
	return handler
}
