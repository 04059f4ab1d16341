package web

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"homenest/internal/contextkeys"
	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	"github.com/go-chi/chi/v5"
)

type homePage struct {
	Featured []browse.Card
}

// Home handles GET /.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	featured, err := h.uc.Featured.Execute(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	cards := make([]browse.Card, len(featured))
	for i, p := range featured {
		cards[i] = browse.NewCard(p)
	}
	h.render(w, r, http.StatusOK, "home", h.pageContext(r, "Find your next home"), homePage{Featured: cards})
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type browsePage struct {
	Filter      domain.PropertyFilter
	SortOrders  []domain.SortOrder
	Listing     browse.Listing
	Page        browse.Page
	Links       []pageLink
	PrevURL     string
	NextURL     string
	ResultTotal int
}

// pageURL keeps the filter and only swaps the page.
func pageURL(path string, st browse.State, page int) string {
	st.SetPage(page)
	q := st.Query()
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// BrowseProperties handles GET /properties.
func (h *Handlers) BrowseProperties(w http.ResponseWriter, r *http.Request) {
	state := browse.StateFromQuery(r.URL.Query())

	res, err := h.uc.Browse.Execute(r.Context(), state)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := browsePage{
		Filter:      res.State.Filter(),
		SortOrders:  domain.SortOrders,
		Listing:     res.Listing,
		Page:        res.Page,
		ResultTotal: res.Page.Total,
	}
	if res.Page.ShowControls() {
		for _, n := range res.Page.Pages() {
			data.Links = append(data.Links, pageLink{Number: n, URL: pageURL(r.URL.Path, res.State, n), Current: n == res.Page.Number})
		}
		if res.Page.HasPrev() {
			data.PrevURL = pageURL(r.URL.Path, res.State, res.Page.Number-1)
		}
		if res.Page.HasNext() {
			data.NextURL = pageURL(r.URL.Path, res.State, res.Page.Number+1)
		}
	}

	h.render(w, r, http.StatusOK, "properties", h.pageContext(r, "All Properties"), data)
}

type detailsPage struct {
	Details    *domain.PropertyDetails
	IsOwner    bool
	Review     domain.ReviewInput
	FieldError map[string]string
}

// PropertyDetails handles GET /properties/{id}.
func (h *Handlers) PropertyDetails(w http.ResponseWriter, r *http.Request) {
	h.showDetails(w, r, http.StatusOK, domain.ReviewInput{}, nil)
}

func (h *Handlers) showDetails(w http.ResponseWriter, r *http.Request, status int, review domain.ReviewInput, fieldErrors map[string]string) {
	id := chi.URLParam(r, "id")
	details, err := h.uc.Details.Execute(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	user := currentUser(r)
	pc := h.pageContext(r, details.Property.PropertyName)
	if len(fieldErrors) > 0 {
		pc.Error = "Please fix the highlighted fields."
	}
	h.render(w, r, status, "details", pc, detailsPage{
		Details:    details,
		IsOwner:    details.Property.OwnedBy(user.Email),
		Review:     review,
		FieldError: fieldErrors,
	})
}

// PostReview handles POST /properties/{id}/reviews.
func (h *Handlers) PostReview(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "PostReview"})
	if err := r.ParseForm(); err != nil {
		logger.Warn("Malformed form", port.Fields{"error": err.Error()})
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	rating, _ := strconv.Atoi(r.PostForm.Get("rating"))
	in := domain.ReviewInput{PropertyID: id, Rating: rating, ReviewText: r.PostForm.Get("reviewText")}

	_, err := h.uc.PostReview.Execute(r.Context(), currentUser(r), in)
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.showDetails(w, r, http.StatusUnprocessableEntity, in, verr.Fields)
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/properties/"+id+"?notice=review-added#reviews", http.StatusSeeOther)
}

type propertyFormPage struct {
	Action     string
	Heading    string
	Submit     string
	Input      domain.PropertyInput
	PriceText  string
	FieldError map[string]string
}

// parsePropertyForm reads the add/edit form. A price that is not a number becomes a field error.
func parsePropertyForm(r *http.Request) (domain.PropertyInput, string, map[string]string) {
	priceText := strings.TrimSpace(r.PostForm.Get("price"))
	in := domain.PropertyInput{
		PropertyName: strings.TrimSpace(r.PostForm.Get("propertyName")),
		Category:     r.PostForm.Get("category"),
		Location:     strings.TrimSpace(r.PostForm.Get("location")),
		ImageLink:    strings.TrimSpace(r.PostForm.Get("imageLink")),
		Description:  strings.TrimSpace(r.PostForm.Get("description")),
	}

	fieldErrors := map[string]string{}
	price, err := strconv.ParseFloat(priceText, 64)
	switch {
	case err != nil:
		fieldErrors["price"] = "Price is required"
	case math.IsNaN(price) || math.IsInf(price, 0):
		fieldErrors["price"] = "Price must be a finite number"
	default:
		in.Price = price
	}
	return in, priceText, fieldErrors
}

func mergeFieldErrors(dst map[string]string, err error) (map[string]string, bool) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return dst, len(dst) > 0
	}
	for k, v := range verr.Fields {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
	return dst, true
}

// NewPropertyForm handles GET /properties/new.
func (h *Handlers) NewPropertyForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "property_form", h.pageContext(r, "Add Property"), propertyFormPage{
		Action:  "/properties",
		Heading: "Add a New Property Listing",
		Submit:  "Add Property",
	})
}

// CreateProperty handles POST /properties.
func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in, priceText, fieldErrors := parsePropertyForm(r)
	form := propertyFormPage{Action: "/properties", Heading: "Add a New Property Listing", Submit: "Add Property", Input: in, PriceText: priceText}

	var err error
	if len(fieldErrors) == 0 {
		_, err = h.uc.AddProperty.Execute(r.Context(), currentUser(r), in)
	} else {
		err = in.Validate()
	}

	if fe, invalid := mergeFieldErrors(fieldErrors, err); invalid {
		form.FieldError = fe
		pc := h.pageContext(r, "Add Property")
		pc.Error = "Please fix the highlighted fields."
		h.render(w, r, http.StatusUnprocessableEntity, "property_form", pc, form)
		return
	}
	if err != nil {
		pc := h.pageContext(r, "Add Property")
		pc.Error = "Failed to add property. Please try again."
		contextkeys.LoggerFromContext(r.Context()).Error("Add property failed", err, nil)
		h.render(w, r, http.StatusBadGateway, "property_form", pc, form)
		return
	}

	http.Redirect(w, r, "/my-properties?notice=property-added", http.StatusSeeOther)
}

// EditPropertyForm handles GET /properties/{id}/edit.
func (h *Handlers) EditPropertyForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	details, err := h.uc.Details.Execute(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !details.Property.OwnedBy(currentUser(r).Email) {
		h.renderError(w, r, domain.ErrNotOwner)
		return
	}

	in := domain.InputFrom(details.Property)
	h.render(w, r, http.StatusOK, "property_form", h.pageContext(r, "Update Property"), propertyFormPage{
		Action:    "/properties/" + id + "/edit",
		Heading:   "Update Property",
		Submit:    "Update Property",
		Input:     in,
		PriceText: domain.FormatPrice(in.Price),
	})
}

// UpdateProperty handles POST /properties/{id}/edit.
func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	in, priceText, fieldErrors := parsePropertyForm(r)
	form := propertyFormPage{Action: "/properties/" + id + "/edit", Heading: "Update Property", Submit: "Update Property", Input: in, PriceText: priceText}

	var err error
	if len(fieldErrors) == 0 {
		err = h.uc.UpdateProperty.Execute(r.Context(), currentUser(r), id, in)
	} else {
		err = in.Validate()
	}

	pc := h.pageContext(r, "Update Property")
	if fe, invalid := mergeFieldErrors(fieldErrors, err); invalid {
		form.FieldError = fe
		pc.Error = "Please fix the highlighted fields."
		h.render(w, r, http.StatusUnprocessableEntity, "property_form", pc, form)
		return
	}

	switch {
	case errors.Is(err, domain.ErrNothingChanged):
		pc.Notice = "No changes were made."
		h.render(w, r, http.StatusOK, "property_form", pc, form)
	case errors.Is(err, domain.ErrPropertyNotFound), errors.Is(err, domain.ErrNotOwner):
		h.renderError(w, r, err)
	case err != nil:
		contextkeys.LoggerFromContext(r.Context()).Error("Update property failed", err, nil)
		pc.Error = "Failed to update property. Please try again."
		h.render(w, r, http.StatusBadGateway, "property_form", pc, form)
	default:
		http.Redirect(w, r, "/properties/"+id+"?notice=property-updated", http.StatusSeeOther)
	}
}

// DeleteProperty handles POST /properties/{id}/delete.
func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.uc.DeleteProperty.Execute(r.Context(), currentUser(r), id); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/my-properties?notice=property-deleted", http.StatusSeeOther)
}
