package web

import (
	"net/http"

	"homenest/internal/core/domain"
)

// PageContext is handed explicitly to every view.
type PageContext struct {
	User           *domain.User
	Path           string
	Title          string
	Notice         string
	Error          string
	GoogleClientID string
	Categories     []string
}

func (pc PageContext) SignedIn() bool { return pc.User != nil }

// notices maps the ?notice= codes set by redirects to messages.
var notices = map[string]string{
	"property-added":   "Property added successfully!",
	"property-updated": "Property updated successfully!",
	"property-deleted": "Property deleted.",
	"review-added":     "Review submitted successfully!",
	"signed-in":        "Welcome back!",
	"registered":       "Account created. Welcome to HomeNest!",
	"signed-out":       "You have been signed out.",
}

func (h *Handlers) pageContext(r *http.Request, title string) PageContext {
	pc := PageContext{
		Path:           r.URL.Path,
		Title:          title,
		Notice:         notices[r.URL.Query().Get("notice")],
		GoogleClientID: h.googleClientID,
		Categories:     domain.Categories,
	}
	if user, ok := UserFromContext(r.Context()); ok {
		pc.User = &user
	}
	return pc
}
