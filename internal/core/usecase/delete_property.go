package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

type DeletePropertyUseCase struct {
	catalog   port.PropertyCatalogPort
	publisher port.ActivityPublisherPort
}

func NewDeletePropertyUseCase(catalog port.PropertyCatalogPort, publisher port.ActivityPublisherPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{catalog: catalog, publisher: publisher}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, user domain.User, propertyID string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": propertyID,
		"user_email":  user.Email,
	})
	ucLogger.Info("Use case started", nil)

	current, err := uc.catalog.GetProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Failed to load property for delete", err, nil)
		return err
	}
	if !current.OwnedBy(user.Email) {
		ucLogger.Warn("Delete attempted by non-owner", nil)
		return domain.ErrNotOwner
	}

	deleted, err := uc.catalog.DeleteProperty(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Listing service failed to delete property", err, nil)
		return err
	}
	if deleted <= 0 {
		ucLogger.Warn("Delete acknowledged but nothing was removed", nil)
		return domain.ErrPropertyNotFound
	}

	announce(ctx, uc.publisher, domain.ActivityPropertyDeleted, propertyID, user)
	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
