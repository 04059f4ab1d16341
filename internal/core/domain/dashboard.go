package domain

// Dashboard summarises a user's own activity.
type Dashboard struct {
	TotalProperties      int
	PropertiesByCategory map[string]int
	TotalReviews         int
	AveragePrice         float64
}
