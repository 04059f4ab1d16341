package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"homenest/internal/core/domain"
)

type fakeCatalog struct {
	mu sync.Mutex

	searchResult []domain.Property
	searchErr    error
	searched     []domain.PropertyFilter

	featured    []domain.Property
	featuredErr error

	properties map[string]domain.Property
	byOwner    []domain.Property
	ownerErr   error

	insertedID    string
	createErr     error
	created       []domain.PropertyInput
	modifiedCount int64
	updated       []domain.PropertyInput
	deletedCount  int64
	deleted       []string
}

func (f *fakeCatalog) SearchProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searched = append(f.searched, filter)
	return f.searchResult, f.searchErr
}

func (f *fakeCatalog) GetFeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	return f.featured, f.featuredErr
}

func (f *fakeCatalog) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) GetPropertiesByOwner(ctx context.Context, email string) ([]domain.Property, error) {
	return f.byOwner, f.ownerErr
}

func (f *fakeCatalog) CreateProperty(ctx context.Context, in domain.PropertyInput) (string, error) {
	f.created = append(f.created, in)
	return f.insertedID, f.createErr
}

func (f *fakeCatalog) UpdateProperty(ctx context.Context, id string, in domain.PropertyInput) (int64, error) {
	f.updated = append(f.updated, in)
	return f.modifiedCount, nil
}

func (f *fakeCatalog) DeleteProperty(ctx context.Context, id string) (int64, error) {
	f.deleted = append(f.deleted, id)
	return f.deletedCount, nil
}

type fakeReviews struct {
	forProperty []domain.Review
	propertyErr error
	byReviewer  []domain.Review
	created     []domain.Review
	insertedID  string
}

func (f *fakeReviews) GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	return f.forProperty, f.propertyErr
}

func (f *fakeReviews) GetReviewsByReviewer(ctx context.Context, email string) ([]domain.Review, error) {
	return f.byReviewer, nil
}

func (f *fakeReviews) CreateReview(ctx context.Context, review domain.Review) (string, error) {
	f.created = append(f.created, review)
	return f.insertedID, nil
}

type fakePublisher struct {
	events []domain.ActivityEvent
	err    error
}

func (f *fakePublisher) PublishActivity(ctx context.Context, event domain.ActivityEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeIdentity struct {
	user      *domain.User
	err       error
	signedUp  []domain.Registration
	lastToken string
}

func (f *fakeIdentity) SignUp(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	f.signedUp = append(f.signedUp, reg)
	return f.user, f.err
}

func (f *fakeIdentity) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeIdentity) SignInWithGoogle(ctx context.Context, idToken, requestURI string) (*domain.User, error) {
	f.lastToken = idToken
	return f.user, f.err
}

type fakeTokens struct {
	issued map[string]domain.User
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: make(map[string]domain.User)}
}

func (f *fakeTokens) GenerateToken(ctx context.Context, user domain.User, ttl time.Duration) (string, error) {
	token := "token-" + user.UID
	f.issued[token] = user
	return token, nil
}

func (f *fakeTokens) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	u, ok := f.issued[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return &u, nil
}
