package handler

import (
	"errors"
	"net/http"

	"globetrotter/internal/domain"
)

// indexPage is the data rendered by the index template
type indexPage struct {
	Users     []domain.User
	Countries []domain.Country
	Total     int
	Color     string
	Error     string
}

// handleHome renders the tracker page for the active user
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, "")
}

// renderIndex builds the index page state. An empty directory renders a
// colorless guest page instead of failing; errMsg carries an inline
// validation message from a failed add.
func (h *Handler) renderIndex(w http.ResponseWriter, errMsg string) {
	users, err := h.userService.ListUsers()
	if err != nil {
		h.serverError(w, "Failed to list users", err)
		return
	}

	page := indexPage{Users: users, Error: errMsg}

	active, err := h.userService.ActiveUser()
	if err != nil && !errors.Is(err, domain.ErrNoUsers) {
		h.serverError(w, "Failed to resolve active user", err)
		return
	}

	if active != nil {
		visited, err := h.visitService.ListVisited(active.ID)
		if err != nil {
			h.serverError(w, "Failed to list visited countries", err)
			return
		}
		page.Countries = visited
		page.Total = len(visited)
		page.Color = active.Color
	}

	h.render(w, "index.html.tmpl", page)
}
