package tui

import (
	"context"

	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
	"homenest/internal/core/port/usecases_port"

	tea "github.com/charmbracelet/bubbletea"
)

// listingsMsg carries the outcome of one fetch cycle back into Update.
type listingsMsg struct {
	ticket     browse.Ticket
	properties []domain.Property
	err        error
}

type detailsMsg struct {
	requestID int
	details   *domain.PropertyDetails
	err       error
}

func fetchListings(ctx context.Context, searcher browse.Searcher, t browse.Ticket) tea.Cmd {
	return func() tea.Msg {
		props, err := searcher.SearchProperties(ctx, t.Filter)
		return listingsMsg{ticket: t, properties: props, err: err}
	}
}

func fetchDetails(ctx context.Context, uc usecases_port.GetPropertyDetailsUseCasePort, id string, requestID int) tea.Cmd {
	return func() tea.Msg {
		details, err := uc.Execute(ctx, id)
		return detailsMsg{requestID: requestID, details: details, err: err}
	}
}
