package web

import (
	"context"
	"sync"

	"homenest/internal/core/browse"
	"homenest/internal/core/domain"
)

type fakeBrowse struct {
	mu     sync.Mutex
	states []browse.State
	items  []domain.Property
	err    error
}

func (f *fakeBrowse) Execute(ctx context.Context, state browse.State) (*browse.Result, error) {
	f.mu.Lock()
	f.states = append(f.states, state)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	pager := browse.NewPager(browse.DefaultPageSize)
	state.SetPage(pager.Clamp(state.Page(), len(f.items)))
	page := pager.Slice(f.items, state.Page())
	return &browse.Result{State: state, Page: page, Listing: browse.BuildListing(false, page.Items)}, nil
}

type fakeFeatured struct{ items []domain.Property }

func (f *fakeFeatured) Execute(ctx context.Context) ([]domain.Property, error) { return f.items, nil }

type fakeDetails struct{ props map[string]domain.Property }

func (f *fakeDetails) Execute(ctx context.Context, id string) (*domain.PropertyDetails, error) {
	p, ok := f.props[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &domain.PropertyDetails{Property: p, Reviews: []domain.Review{}}, nil
}

type fakeAdd struct {
	calls []domain.PropertyInput
	err   error
}

func (f *fakeAdd) Execute(ctx context.Context, user domain.User, in domain.PropertyInput) (string, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return "", f.err
	}
	if err := in.Validate(); err != nil {
		return "", err
	}
	return "665f1c2b9d3e4a0012345678", nil
}

type fakeUpdate struct{ err error }

func (f *fakeUpdate) Execute(ctx context.Context, user domain.User, id string, in domain.PropertyInput) error {
	return f.err
}

type fakeDelete struct {
	ids []string
	err error
}

func (f *fakeDelete) Execute(ctx context.Context, user domain.User, id string) error {
	f.ids = append(f.ids, id)
	return f.err
}

type fakeMyProperties struct{ items []domain.Property }

func (f *fakeMyProperties) Execute(ctx context.Context, user domain.User) ([]domain.Property, error) {
	return f.items, nil
}

type fakePostReview struct{ calls []domain.ReviewInput }

func (f *fakePostReview) Execute(ctx context.Context, user domain.User, in domain.ReviewInput) (string, error) {
	f.calls = append(f.calls, in)
	if err := in.Validate(); err != nil {
		return "", err
	}
	return "r1", nil
}

type fakeMyReviews struct{ items []domain.Review }

func (f *fakeMyReviews) Execute(ctx context.Context, user domain.User) ([]domain.Review, error) {
	return f.items, nil
}

type fakeDashboard struct{}

func (f *fakeDashboard) Execute(ctx context.Context, user domain.User) (*domain.Dashboard, error) {
	return &domain.Dashboard{TotalProperties: 2, PropertiesByCategory: map[string]int{"Rent": 2}, AveragePrice: 1500}, nil
}

type fakeAuth struct {
	session *domain.Session
	err     error
	tokens  map[string]domain.User
}

func (f *fakeAuth) register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return f.session, f.err
}

type registerFunc func(ctx context.Context, reg domain.Registration) (*domain.Session, error)

func (fn registerFunc) Execute(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	return fn(ctx, reg)
}

type loginFunc func(ctx context.Context, creds domain.Credentials) (*domain.Session, error)

func (fn loginFunc) Execute(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	return fn(ctx, creds)
}

type federatedFunc func(ctx context.Context, idToken, requestURI string) (*domain.Session, error)

func (fn federatedFunc) Execute(ctx context.Context, idToken, requestURI string) (*domain.Session, error) {
	return fn(ctx, idToken, requestURI)
}

type validateFunc func(ctx context.Context, token string) (*domain.User, error)

func (fn validateFunc) Execute(ctx context.Context, token string) (*domain.User, error) {
	return fn(ctx, token)
}
