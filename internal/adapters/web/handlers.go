package web

import (
	"errors"
	"net/http"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
	"homenest/internal/core/port/usecases_port"
)

// UseCases bundles the core operations the web adapter drives.
type UseCases struct {
	Browse          usecases_port.BrowsePropertiesUseCasePort
	Featured        usecases_port.GetFeaturedPropertiesUseCasePort
	Details         usecases_port.GetPropertyDetailsUseCasePort
	AddProperty     usecases_port.AddPropertyUseCasePort
	UpdateProperty  usecases_port.UpdatePropertyUseCasePort
	DeleteProperty  usecases_port.DeletePropertyUseCasePort
	MyProperties    usecases_port.GetMyPropertiesUseCasePort
	PostReview      usecases_port.PostReviewUseCasePort
	MyReviews       usecases_port.GetMyReviewsUseCasePort
	Dashboard       usecases_port.GetDashboardUseCasePort
	Register        usecases_port.RegisterUserUseCasePort
	Login           usecases_port.LoginUserUseCasePort
	FederatedLogin  usecases_port.FederatedLoginUseCasePort
	ValidateSession usecases_port.ValidateSessionUseCasePort
}

// Handlers serves the HomeNest pages and JSON API.
type Handlers struct {
	uc             UseCases
	renderer       *Renderer
	cookie         SessionCookie
	googleClientID string
	publicURL      string
}

type HandlersConfig struct {
	Cookie         SessionCookie
	GoogleClientID string
	PublicURL      string
}

func NewHandlers(uc UseCases, renderer *Renderer, cfg HandlersConfig) *Handlers {
	return &Handlers{
		uc:             uc,
		renderer:       renderer,
		cookie:         cfg.Cookie,
		googleClientID: cfg.GoogleClientID,
		publicURL:      cfg.PublicURL,
	}
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, pc PageContext, data interface{}) {
	h.renderer.Render(w, contextkeys.LoggerFromContext(r.Context()), status, page, pc, data)
}

// currentUser is only called behind RequireUser.
func currentUser(r *http.Request) domain.User {
	user, _ := UserFromContext(r.Context())
	return user
}

// renderError maps core errors onto an error page.
func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	logger := contextkeys.LoggerFromContext(r.Context())

	status := http.StatusInternalServerError
	title := "Something went wrong"
	message := "Please try again later."
	switch {
	case errors.Is(err, domain.ErrPropertyNotFound):
		status, title, message = http.StatusNotFound, "Property not found", "The property you are looking for does not exist."
	case errors.Is(err, domain.ErrNotOwner):
		status, title, message = http.StatusForbidden, "Not allowed", "Only the owner can change this property."
	default:
		logger.Error("Request failed", err, nil)
	}

	pc := h.pageContext(r, title)
	h.render(w, r, status, "error", pc, errorPage{Status: status, Title: title, Message: message})
}

type errorPage struct {
	Status  int
	Title   string
	Message string
}

// NotFound renders the 404 page for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	contextkeys.LoggerFromContext(r.Context()).Info("Route not found", port.Fields{"path": r.URL.Path})
	pc := h.pageContext(r, "Page not found")
	h.render(w, r, http.StatusNotFound, "error", pc, errorPage{
		Status:  http.StatusNotFound,
		Title:   "Page not found",
		Message: "Oops! The page you are looking for does not exist.",
	})
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
