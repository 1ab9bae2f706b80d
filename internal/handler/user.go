package handler

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// newUserColors is the palette offered on the new-member form. The chosen
// color is stored as an opaque token; nothing validates it server-side.
var newUserColors = []string{
	"teal", "powderblue", "coral", "gold", "olive", "orchid", "salmon", "skyblue",
}

// newUserPage is the data rendered by the new-member template
type newUserPage struct {
	Colors []string
}

// handleUser either opens the new-member form or switches the active
// profile. The switch is unconditional: the id is not checked against the
// directory, the home page falls back if it turns out to be stale.
func (h *Handler) handleUser(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("add") == "new" {
		h.render(w, "new.html.tmpl", newUserPage{Colors: newUserColors})
		return
	}

	id, err := strconv.ParseInt(r.FormValue("user"), 10, 64)
	if err != nil {
		h.logger.Warn("Ignoring switch to non-numeric user id",
			zap.String("user", r.FormValue("user")),
		)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.userService.SwitchUser(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleNewUser creates a profile and makes it the active one
func (h *Handler) handleNewUser(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	color := r.FormValue("color")

	user, err := h.userService.CreateUser(name, color)
	if err != nil {
		h.serverError(w, "Failed to create user", err)
		return
	}

	h.logger.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("name", user.Name),
	)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
