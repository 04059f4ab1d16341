package domain

import (
	"math"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating left on a property.
type Review struct {
	ID            string
	PropertyID    string
	PropertyName  string
	ReviewerName  string
	ReviewerEmail string
	ReviewerPhoto string
	Rating        int
	ReviewText    string
	CreatedAt     string
}

// ReviewInput is what the review form submits.
type ReviewInput struct {
	PropertyID string
	Rating     int
	ReviewText string
}

func (in ReviewInput) Validate() error {
	verr := NewValidationError()
	if in.PropertyID == "" {
		verr.Add("propertyId", "Property is required")
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		verr.Add("rating", "Please select a rating")
	}
	if strings.TrimSpace(in.ReviewText) == "" {
		verr.Add("reviewText", "Please write a review")
	}
	return verr.OrNil()
}

// ReviewSummary aggregates the reviews of one property.
type ReviewSummary struct {
	Count         int
	AverageRating float64
}

// Summarize averages ratings rounded to one decimal.
func Summarize(reviews []Review) ReviewSummary {
	if len(reviews) == 0 {
		return ReviewSummary{}
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return ReviewSummary{
		Count:         len(reviews),
		AverageRating: math.Round(avg*10) / 10,
	}
}
