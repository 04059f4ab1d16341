package usecase

import (
	"context"
	"fmt"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type AddPropertyUseCase struct {
	catalog   port.PropertyCatalogPort
	publisher port.ActivityPublisherPort
}

func NewAddPropertyUseCase(catalog port.PropertyCatalogPort, publisher port.ActivityPublisherPort) *AddPropertyUseCase {
	return &AddPropertyUseCase{catalog: catalog, publisher: publisher}
}

// Execute stamps the owner fields from user and returns the new listing id.
func (uc *AddPropertyUseCase) Execute(ctx context.Context, user domain.User, in domain.PropertyInput) (string, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":   "AddProperty",
		"user_email": user.Email,
	})
	ucLogger.Info("Use case started", nil)

	if err := in.Validate(); err != nil {
		ucLogger.Warn("Property input rejected", port.Fields{"reason": err.Error()})
		return "", err
	}

	id, err := uc.catalog.CreateProperty(ctx, in.WithOwner(user))
	if err != nil {
		ucLogger.Error("Listing service failed to create property", err, nil)
		return "", err
	}
	if id == "" {
		err := fmt.Errorf("listing service did not return insertedId")
		ucLogger.Error("Create property was not acknowledged", err, nil)
		return "", err
	}

	announce(ctx, uc.publisher, domain.ActivityPropertyCreated, id, user)
	ucLogger.Info("Use case finished successfully", port.Fields{"property_id": id})
	return id, nil
}
