package port

import (
	"context"

	"homenest/internal/core/domain"
)

// PropertyCatalogPort is the listing side of the remote listing service.
// Mutations return the raw success markers of the service.
type PropertyCatalogPort interface {
	SearchProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
	GetFeaturedProperties(ctx context.Context) ([]domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	GetPropertiesByOwner(ctx context.Context, email string) ([]domain.Property, error)

	// CreateProperty returns insertedId.
	CreateProperty(ctx context.Context, in domain.PropertyInput) (string, error)
	// UpdateProperty returns modifiedCount.
	UpdateProperty(ctx context.Context, id string, in domain.PropertyInput) (int64, error)
	// DeleteProperty returns deletedCount.
	DeleteProperty(ctx context.Context, id string) (int64, error)
}
