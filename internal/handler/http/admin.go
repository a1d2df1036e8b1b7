package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-contacts-keeper/internal/utils"
)

// admin is reachable only through [Handler.requireAdmin].
func (h *Handler) admin(w http.ResponseWriter, r *http.Request) {
	user, _ := currentUser(r)

	utils.WriteMessage(w, fmt.Sprintf("Welcome, %s! This is an administrative route", user.Username), http.StatusOK)
}
