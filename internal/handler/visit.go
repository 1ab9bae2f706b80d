package handler

import (
	"errors"
	"net/http"

	"globetrotter/internal/domain"

	"go.uber.org/zap"
)

// handleAdd resolves the submitted country name and records a visit for
// the active user. Validation failures re-render the page with an inline
// message and the prior state intact.
func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	input := r.FormValue("country")

	active, err := h.userService.ActiveUser()
	if err != nil {
		if errors.Is(err, domain.ErrNoUsers) {
			h.renderIndex(w, "Add a family member before tracking countries.")
			return
		}
		h.serverError(w, "Failed to resolve active user", err)
		return
	}

	country, err := h.visitService.MarkVisited(active.ID, input)
	switch {
	case errors.Is(err, domain.ErrCountryNotFound):
		h.renderIndex(w, "Country not found. Please try again.")
		return
	case errors.Is(err, domain.ErrAlreadyVisited):
		h.renderIndex(w, "You have already added this country.")
		return
	case err != nil:
		h.serverError(w, "Failed to add visit", err)
		return
	}

	h.logger.Info("Visit added",
		zap.Int64("user_id", active.ID),
		zap.String("country_code", country.Code),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDelete unmarks a country for the active user. Removing a country
// that is not in the set is a no-op.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	countryCode := r.FormValue("countryCode")

	active, err := h.userService.ActiveUser()
	if err != nil {
		if errors.Is(err, domain.ErrNoUsers) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.serverError(w, "Failed to resolve active user", err)
		return
	}

	if err := h.visitService.RemoveVisit(active.ID, countryCode); err != nil {
		h.serverError(w, "Failed to remove visit", err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
