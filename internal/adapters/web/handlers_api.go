package web

import (
	"net/http"

	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
)

type propertyJSON struct {
	ID           string  `json:"_id"`
	PropertyName string  `json:"propertyName"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	PriceLabel   string  `json:"priceLabel"`
	Location     string  `json:"location"`
	ImageLink    string  `json:"imageLink"`
	Excerpt      string  `json:"excerpt"`
	UserName     string  `json:"userName"`
}

type browseJSON struct {
	Properties []propertyJSON `json:"properties"`
	Page       int            `json:"page"`
	PageCount  int            `json:"pageCount"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	Query      string         `json:"query"`
	Message    string         `json:"message,omitempty"`
}

// APIBrowseProperties handles GET /api/v1/properties and mirrors the browse page as JSON.
func (h *Handlers) APIBrowseProperties(w http.ResponseWriter, r *http.Request) {
	state := browse.StateFromQuery(r.URL.Query())

	res, err := h.uc.Browse.Execute(r.Context(), state)
	if err != nil {
		WriteJSONError(w, http.StatusBadGateway, "failed to load properties")
		return
	}

	out := browseJSON{
		Properties: make([]propertyJSON, 0, len(res.Listing.Cards)),
		Page:       res.Page.Number,
		PageCount:  res.Page.Count,
		PageSize:   res.Page.Size,
		Total:      res.Page.Total,
		Query:      res.State.Query().Encode(),
		Message:    res.Listing.Message,
	}
	for _, c := range res.Listing.Cards {
		out.Properties = append(out.Properties, toPropertyJSON(c))
	}
	RespondWithJSON(w, http.StatusOK, out)
}

func toPropertyJSON(c browse.Card) propertyJSON {
	p := c.Property
	return propertyJSON{
		ID:           p.ID,
		PropertyName: p.PropertyName,
		Category:     p.Category,
		Price:        p.Price,
		PriceLabel:   c.PriceLabel,
		Location:     p.Location,
		ImageLink:    p.ImageLink,
		Excerpt:      c.Excerpt,
		UserName:     p.UserName,
	}
}

// APICategories handles GET /api/v1/categories.
func (h *Handlers) APICategories(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, domain.Categories)
}
