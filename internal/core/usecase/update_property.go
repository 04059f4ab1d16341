package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type UpdatePropertyUseCase struct {
	catalog   port.PropertyCatalogPort
	publisher port.ActivityPublisherPort
}

func NewUpdatePropertyUseCase(catalog port.PropertyCatalogPort, publisher port.ActivityPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{catalog: catalog, publisher: publisher}
}

// Execute returns domain.ErrNothingChanged when the service reports modifiedCount == 0.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, user domain.User, propertyID string, in domain.PropertyInput) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": propertyID,
		"user_email":  user.Email,
	})
	ucLogger.Info("Use case started", nil)

	if err := in.Validate(); err != nil {
		ucLogger.Warn("Property input rejected", port.Fields{"reason": err.Error()})
		return err
	}

	current, err := uc.catalog.GetProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load property for update", err, nil)
		return err
	}
	if !current.OwnedBy(user.Email) {
		ucLogger.Warn("Update attempted by non-owner", nil)
		return domain.ErrNotOwner
	}

	modified, err := uc.catalog.UpdateProperty(ctx, propertyID, in.WithOwner(user))
	if err != nil {
		ucLogger.Error("Listing service failed to update property", err, nil)
		return err
	}
	if modified <= 0 {
		ucLogger.Info("Update matched but changed nothing", nil)
		return domain.ErrNothingChanged
	}

	announce(ctx, uc.publisher, domain.ActivityPropertyUpdated, propertyID, user)
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
