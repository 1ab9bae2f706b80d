package handler

import (
	"database/sql"
	"html/template"
	"net/http"

	"globetrotter/internal/handler/mw"
	"globetrotter/internal/service"
	"globetrotter/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handler serves the tracker's HTML pages
type Handler struct {
	userService  *service.UserService
	visitService *service.VisitService
	db           *sql.DB
	logger       *zap.Logger
	tmpl         *template.Template
}

// NewHandler creates a new handler instance
func NewHandler(
	userService *service.UserService,
	visitService *service.VisitService,
	db *sql.DB,
	logger *zap.Logger,
) (*Handler, error) {
	tmpl, err := template.ParseFS(web.FS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	return &Handler{
		userService:  userService,
		visitService: visitService,
		db:           db,
		logger:       logger,
		tmpl:         tmpl,
	}, nil
}

// Routes builds the router with all handlers registered
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.Log(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.handleHome)
	r.Post("/add", h.handleAdd)
	r.Post("/delete", h.handleDelete)
	r.Post("/user", h.handleUser)
	r.Post("/new", h.handleNewUser)
	r.Get("/healthz", h.handleHealthz)

	r.Handle("/static/*", http.FileServer(http.FS(web.FS)))

	return r
}

// render writes a template, falling back to a plain 500 if execution fails
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("Failed to render template",
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, "Something went wrong. Please try again later.", http.StatusInternalServerError)
	}
}

// serverError logs an infrastructure failure and renders a generic error page
func (h *Handler) serverError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	http.Error(w, "Something went wrong. Please try again later.", http.StatusInternalServerError)
}
