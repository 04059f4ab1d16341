package listing_api_client

import "homenest/internal/core/domain"

// PropertyResponse mirrors a property document of the listing service.
type PropertyResponse struct {
	ID           string  `json:"_id"`
	PropertyName string  `json:"propertyName"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Location     string  `json:"location"`
	ImageLink    string  `json:"imageLink"`
	Description  string  `json:"description"`
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail"`
	UserPhoto    string  `json:"userPhoto"`
	CreatedAt    string  `json:"createdAt"`
}

func (r PropertyResponse) toDomain() domain.Property {
	return domain.Property{
		ID:           r.ID,
		PropertyName: r.PropertyName,
		Category:     r.Category,
		Price:        r.Price,
		Location:     r.Location,
		ImageLink:    r.ImageLink,
		Description:  r.Description,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		UserPhoto:    r.UserPhoto,
		CreatedAt:    r.CreatedAt,
	}
}

// PropertyRequest is the body of POST /properties and PUT /properties/{id}.
type PropertyRequest struct {
	PropertyName string  `json:"propertyName"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Location     string  `json:"location"`
	ImageLink    string  `json:"imageLink"`
	Description  string  `json:"description"`
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail"`
	UserPhoto    string  `json:"userPhoto"`
}

func propertyRequestFrom(in domain.PropertyInput) PropertyRequest {
	return PropertyRequest{
		PropertyName: in.PropertyName,
		Category:     in.Category,
		Price:        in.Price,
		Location:     in.Location,
		ImageLink:    in.ImageLink,
		Description:  in.Description,
		UserName:     in.UserName,
		UserEmail:    in.UserEmail,
		UserPhoto:    in.UserPhoto,
	}
}

// ReviewResponse mirrors a review document.
type ReviewResponse struct {
	ID            string `json:"_id"`
	PropertyID    string `json:"propertyId"`
	PropertyName  string `json:"propertyName"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
	ReviewerPhoto string `json:"reviewerPhoto"`
	Rating        int    `json:"rating"`
	ReviewText    string `json:"reviewText"`
	CreatedAt     string `json:"createdAt"`
}

func (r ReviewResponse) toDomain() domain.Review {
	return domain.Review{
		ID:            r.ID,
		PropertyID:    r.PropertyID,
		PropertyName:  r.PropertyName,
		ReviewerName:  r.ReviewerName,
		ReviewerEmail: r.ReviewerEmail,
		ReviewerPhoto: r.ReviewerPhoto,
		Rating:        r.Rating,
		ReviewText:    r.ReviewText,
		CreatedAt:     r.CreatedAt,
	}
}

// ReviewRequest is the body of POST /reviews.
type ReviewRequest struct {
	PropertyID    string `json:"propertyId"`
	PropertyName  string `json:"propertyName"`
	ReviewerName  string `json:"reviewerName"`
	ReviewerEmail string `json:"reviewerEmail"`
	ReviewerPhoto string `json:"reviewerPhoto"`
	Rating        int    `json:"rating"`
	ReviewText    string `json:"reviewText"`
}

// InsertResponse, UpdateResponse and DeleteResponse carry the success markers of the service.
type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
