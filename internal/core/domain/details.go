package domain

// PropertyDetails is everything the detail page shows.
type PropertyDetails struct {
	Property Property
	Reviews  []Review
	Summary  ReviewSummary
}
