package web

import (
	"net/http"
	"sort"

	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
)

type myPropertiesPage struct {
	Cards []browse.Card
}

// MyProperties handles GET /my-properties.
func (h *Handlers) MyProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.uc.MyProperties.Execute(r.Context(), currentUser(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	cards := make([]browse.Card, len(props))
	for i, p := range props {
		cards[i] = browse.NewCard(p)
	}
	h.render(w, r, http.StatusOK, "my_properties", h.pageContext(r, "My Properties"), myPropertiesPage{Cards: cards})
}

type myRatingsPage struct {
	Reviews []domain.Review
}

// MyRatings handles GET /my-ratings.
func (h *Handlers) MyRatings(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.uc.MyReviews.Execute(r.Context(), currentUser(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, "my_ratings", h.pageContext(r, "My Ratings"), myRatingsPage{Reviews: reviews})
}

type categoryCount struct {
	Category string
	Count    int
}

type dashboardPage struct {
	Dashboard    *domain.Dashboard
	Categories   []categoryCount
	AverageLabel string
}

// Dashboard handles GET /dashboard.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.uc.Dashboard.Execute(r.Context(), currentUser(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	counts := make([]categoryCount, 0, len(dash.PropertiesByCategory))
	for c, n := range dash.PropertiesByCategory {
		counts = append(counts, categoryCount{Category: c, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})

	h.render(w, r, http.StatusOK, "dashboard", h.pageContext(r, "Dashboard"), dashboardPage{
		Dashboard:    dash,
		Categories:   counts,
		AverageLabel: browse.FormatPriceLabel(dash.AveragePrice),
	})
}
