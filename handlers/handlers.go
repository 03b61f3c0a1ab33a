// Package handlers contains the echo handlers for the admin API. Handlers
// parse requests, call into the store or a service, and map errors to status
// codes; they hold no aggregation logic themselves.
package handlers

import (
	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/mailer"
	"github.com/wearsaintpaul/admin-backend-go/services"
)

type Handler struct {
	store  database.RecordStore
	users  *services.UserService
	mailer *mailer.Mailer
}

// New wires the handler set. mailer may be nil when SMTP is not configured;
// the newsletter endpoint then reports the feature unavailable.
func New(store database.RecordStore, users *services.UserService, m *mailer.Mailer) *Handler {
	return &Handler{store: store, users: users, mailer: m}
}
