package browse

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"homenest/internal/core/domain"
)

const (
	ExcerptLength = 100
	Ellipsis      = "..."
	EmptyMessage  = "No properties found matching your criteria."
)

type ListingKind int

const (
	ListingLoading ListingKind = iota
	ListingEmpty
	ListingCards
)

// Card is the display form of one property.
type Card struct {
	Key        string
	Property   domain.Property
	Excerpt    string
	PriceLabel string
}

// Listing is what a renderer draws for one page.
type Listing struct {
	Kind    ListingKind
	Message string
	Cards   []Card
}

func (l Listing) IsLoading() bool { return l.Kind == ListingLoading }

func (l Listing) IsEmpty() bool { return l.Kind == ListingEmpty }

var pricePrinter = message.NewPrinter(language.English)

// BuildListing is a pure function of its inputs.
func BuildListing(loading bool, items []domain.Property) Listing {
	if loading {
		return Listing{Kind: ListingLoading}
	}
	if len(items) == 0 {
		return Listing{Kind: ListingEmpty, Message: EmptyMessage}
	}

	cards := make([]Card, len(items))
	for i, p := range items {
		cards[i] = NewCard(p)
	}
	return Listing{Kind: ListingCards, Cards: cards}
}

func NewCard(p domain.Property) Card {
	return Card{
		Key:        p.ID,
		Property:   p,
		Excerpt:    Truncate(p.Description, ExcerptLength),
		PriceLabel: FormatPriceLabel(p.Price),
	}
}

// Truncate keeps at most limit characters and appends "..." when it cut anything.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i] + Ellipsis
		}
		count++
	}
	return s
}

// FormatPriceLabel renders 1250000 as "$1,250,000" and keeps cents when present.
func FormatPriceLabel(price float64) string {
	if price == float64(int64(price)) {
		return pricePrinter.Sprintf("$%d", int64(price))
	}
	return pricePrinter.Sprintf("$%.2f", price)
}

// Result is one rendered page of a browse view.
type Result struct {
	State   State
	Page    Page
	Listing Listing
}
