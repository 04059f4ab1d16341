package domain

import (
	"math"
	"net/url"
	"strings"
)

// Categories offered by the listing form. Stored values are not restricted to these.
var Categories = []string{"Rent", "Sale", "Commercial", "Land"}

// Property is a listing as returned by the listing service.
type Property struct {
	ID           string
	PropertyName string
	Category     string
	Price        float64
	Location     string
	ImageLink    string
	Description  string
	UserName     string
	UserEmail    string
	UserPhoto    string
	CreatedAt    string
}

// OwnedBy reports whether email is the listing owner.
func (p Property) OwnedBy(email string) bool {
	return email != "" && strings.EqualFold(p.UserEmail, email)
}

// PropertyInput is what the add and edit forms submit.
type PropertyInput struct {
	PropertyName string
	Category     string
	Price        float64
	Location     string
	ImageLink    string
	Description  string
	UserName     string
	UserEmail    string
	UserPhoto    string
}

// Validate checks the form rules. Owner fields are stamped by the server and not checked here.
func (in PropertyInput) Validate() error {
	verr := NewValidationError()

	if strings.TrimSpace(in.PropertyName) == "" {
		verr.Add("propertyName", "Property name is required")
	}
	if !IsKnownCategory(in.Category) {
		verr.Add("category", "Choose one of: "+strings.Join(Categories, ", "))
	}
	switch {
	case math.IsNaN(in.Price) || math.IsInf(in.Price, 0):
		verr.Add("price", "Price must be a finite number")
	case in.Price < 0:
		verr.Add("price", "Price cannot be negative")
	}
	if strings.TrimSpace(in.Location) == "" {
		verr.Add("location", "Location is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.Add("description", "Description is required")
	}
	if !isAbsoluteURL(in.ImageLink) {
		verr.Add("imageLink", "Image link must be an absolute http(s) URL")
	}

	return verr.OrNil()
}

// WithOwner copies the principal's identity onto the input.
func (in PropertyInput) WithOwner(u User) PropertyInput {
	in.UserName = u.DisplayName
	in.UserEmail = u.Email
	in.UserPhoto = u.PhotoURL
	return in
}

// InputFrom turns an existing listing back into form values.
func InputFrom(p Property) PropertyInput {
	return PropertyInput{
		PropertyName: p.PropertyName,
		Category:     p.Category,
		Price:        p.Price,
		Location:     p.Location,
		ImageLink:    p.ImageLink,
		Description:  p.Description,
		UserName:     p.UserName,
		UserEmail:    p.UserEmail,
		UserPhoto:    p.UserPhoto,
	}
}

func IsKnownCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
