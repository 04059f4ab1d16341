package usecase

import (
	"context"

	"homenest/internal/contextkeys"
	"homenest/internal/core/browse"
	"homenest/internal/core/port"
)

// BrowsePropertiesUseCase runs one fetch cycle and paginates the result on the client.
type BrowsePropertiesUseCase struct {
	catalog port.PropertyCatalogPort
	pager   browse.Pager
}

func NewBrowsePropertiesUseCase(catalog port.PropertyCatalogPort, pageSize int) *BrowsePropertiesUseCase {
	return &BrowsePropertiesUseCase{catalog: catalog, pager: browse.NewPager(pageSize)}
}

// Execute never fails on a listing-service error: the failure is logged and the page is empty.
func (uc *BrowsePropertiesUseCase) Execute(ctx context.Context, state browse.State) (*browse.Result, error) {
	filter := state.Filter()
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "BrowseProperties",
		"filter":   filter.QueryParams().Encode(),
		"page":     state.Page(),
	})
	ucLogger.Info("Use case started", nil)

	fetcher := browse.NewFetcher()
	snap, _ := fetcher.Fetch(ctx, uc.catalog, filter)
	if snap.Err != nil {
		ucLogger.Error("Listing fetch failed, showing empty result", snap.Err, nil)
	}

	page := uc.pager.Clamp(state.Page(), len(snap.Properties))
	state.SetPage(page)
	pg := uc.pager.Slice(snap.Properties, page)

	ucLogger.Info("Use case finished", port.Fields{
		"total_found":   pg.Total,
		"items_on_page": len(pg.Items),
	})

	return &browse.Result{
		State:   state,
		Page:    pg,
		Listing: browse.BuildListing(snap.Loading(), pg.Items),
	}, nil
}
