package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	logger_adapter "homenest/internal/adapters/logger"
	"homenest/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookie = "homenest_session"

var owner = domain.User{UID: "u1", Email: "owner@example.com", DisplayName: "Owner"}

type fixture struct {
	router  http.Handler
	browse  *fakeBrowse
	add     *fakeAdd
	update  *fakeUpdate
	del     *fakeDelete
	review  *fakePostReview
	auth    *fakeAuth
	fedArgs []string
}

func listings(n int) []domain.Property {
	out := make([]domain.Property, n)
	for i := range out {
		out[i] = domain.Property{
			ID:           fmt.Sprintf("p%02d", i),
			PropertyName: fmt.Sprintf("House %d", i),
			Category:     "Rent",
			Price:        1000,
			Description:  strings.Repeat("d", 120),
			UserEmail:    owner.Email,
		}
	}
	return out
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	renderer, err := NewRenderer()
	require.NoError(t, err)

	f := &fixture{
		browse: &fakeBrowse{},
		add:    &fakeAdd{},
		update: &fakeUpdate{},
		del:    &fakeDelete{},
		review: &fakePostReview{},
		auth: &fakeAuth{
			session: &domain.Session{User: owner, Token: "tok-new"},
			tokens:  map[string]domain.User{"tok-owner": owner},
		},
	}

	props := map[string]domain.Property{}
	for _, p := range listings(3) {
		props[p.ID] = p
	}

	uc := UseCases{
		Browse:         f.browse,
		Featured:       &fakeFeatured{items: listings(2)},
		Details:        &fakeDetails{props: props},
		AddProperty:    f.add,
		UpdateProperty: f.update,
		DeleteProperty: f.del,
		MyProperties:   &fakeMyProperties{items: listings(1)},
		PostReview:     f.review,
		MyReviews:      &fakeMyReviews{items: []domain.Review{{PropertyID: "p00", PropertyName: "House 0", Rating: 4, ReviewText: "Nice"}}},
		Dashboard:      &fakeDashboard{},
		Register:       registerFunc(f.auth.register),
		Login: loginFunc(func(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
			if creds.Password != "Secret1" {
				return nil, domain.ErrInvalidCredentials
			}
			return f.auth.session, nil
		}),
		FederatedLogin: federatedFunc(func(ctx context.Context, idToken, requestURI string) (*domain.Session, error) {
			f.fedArgs = []string{idToken, requestURI}
			return f.auth.session, nil
		}),
		ValidateSession: validateFunc(func(ctx context.Context, token string) (*domain.User, error) {
			u, ok := f.auth.tokens[token]
			if !ok {
				return nil, domain.ErrSessionInvalid
			}
			return &u, nil
		}),
	}

	h := NewHandlers(uc, renderer, HandlersConfig{
		Cookie:         SessionCookie{Name: testCookie, TTL: time.Hour},
		GoogleClientID: "client-id",
		PublicURL:      "http://localhost:8080",
	})
	f.router = NewRouter(ServerConfig{CORSAllowedOrigins: []string{"http://localhost:5173"}}, h, logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard}))
	return f
}

func (f *fixture) do(method, target string, form url.Values, signedIn bool) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if signedIn {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "tok-owner"})
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHomeRendersFeatured(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "House 1")
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestBrowsePassesFilterAndPage(t *testing.T) {
	f := newFixture(t)
	f.browse.items = listings(20)

	rec := f.do(http.MethodGet, "/properties?search=house&category=Rent&sort=price-desc&page=2", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.browse.states, 1)
	st := f.browse.states[0]
	assert.Equal(t, "house", st.Filter().Search)
	assert.Equal(t, domain.SortPriceDesc, st.Filter().Sort)
	assert.Equal(t, 2, st.Page())

	body := rec.Body.String()
	assert.Contains(t, body, "House 8")
	assert.NotContains(t, body, "House 7<")
	assert.Contains(t, body, `class="pager"`)
	assert.Contains(t, body, strings.Repeat("d", 100)+"...")
}

func TestBrowseEmptyHidesPager(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/properties?search=nothing", nil, false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No properties found matching your criteria.")
	assert.NotContains(t, rec.Body.String(), `class="pager"`)
}

func TestAPIBrowse(t *testing.T) {
	f := newFixture(t)
	f.browse.items = listings(10)

	rec := f.do(http.MethodGet, "/api/v1/properties?page=2", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var out browseJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 2, out.PageCount)
	assert.Equal(t, 10, out.Total)
	assert.Len(t, out.Properties, 2)
	assert.Equal(t, "page=2", out.Query)
}

func TestAPIBrowseHugePageWithNoResults(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/properties?page=1152921504606846977", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var out browseJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 0, out.Total)
	assert.Empty(t, out.Properties)

	rec = f.do(http.MethodGet, "/properties?page=1152921504606846977", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No properties found matching your criteria.")
}

func TestProtectedPagesRedirectToLogin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/my-properties", nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fmy-properties", rec.Header().Get("Location"))

	rec = f.do(http.MethodGet, "/properties/p00", nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestInvalidSessionCookieIsCleared(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "forged"})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), testCookie+"=;")
	assert.Contains(t, rec.Body.String(), "Login")
}

func TestDetailsShowsOwnerControls(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/properties/p01", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/properties/p01/edit")
	assert.Contains(t, rec.Body.String(), "No reviews yet")
}

func TestDetailsUnknownPropertyIs404(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/properties/missing", nil, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProperty(t *testing.T) {
	f := newFixture(t)

	form := url.Values{
		"propertyName": {"Lake House"},
		"category":     {"Sale"},
		"price":        {"250000"},
		"location":     {"Minsk"},
		"imageLink":    {"https://img.example.com/1.jpg"},
		"description":  {"Quiet"},
	}
	rec := f.do(http.MethodPost, "/properties", form, true)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/my-properties?notice=property-added", rec.Header().Get("Location"))
	require.Len(t, f.add.calls, 1)
	assert.Equal(t, 250000.0, f.add.calls[0].Price)
}

func TestCreatePropertyRejectsBadForm(t *testing.T) {
	f := newFixture(t)

	form := url.Values{"propertyName": {"Lake House"}, "category": {"Sale"}, "price": {"abc"}}
	rec := f.do(http.MethodPost, "/properties", form, true)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, f.add.calls)
	assert.Contains(t, rec.Body.String(), "Price is required")
	assert.Contains(t, rec.Body.String(), "Lake House")
}

func TestCreatePropertyRejectsNonFinitePrice(t *testing.T) {
	for _, price := range []string{"NaN", "Inf", "-Infinity"} {
		t.Run(price, func(t *testing.T) {
			f := newFixture(t)

			form := url.Values{
				"propertyName": {"Lake House"},
				"category":     {"Sale"},
				"price":        {price},
				"location":     {"Minsk"},
				"imageLink":    {"https://img.example.com/1.jpg"},
				"description":  {"Quiet"},
			}
			rec := f.do(http.MethodPost, "/properties", form, true)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Empty(t, f.add.calls)
			assert.Contains(t, rec.Body.String(), "Price must be a finite number")
		})
	}
}

func TestUpdateNothingChanged(t *testing.T) {
	f := newFixture(t)
	f.update.err = domain.ErrNothingChanged

	form := url.Values{
		"propertyName": {"House 1"},
		"category":     {"Rent"},
		"price":        {"1000"},
		"location":     {"Minsk"},
		"imageLink":    {"https://img.example.com/1.jpg"},
		"description":  {"Same"},
	}
	rec := f.do(http.MethodPost, "/properties/p01/edit", form, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No changes were made.")
}

func TestDeleteNotOwnerIsForbidden(t *testing.T) {
	f := newFixture(t)
	f.del.err = domain.ErrNotOwner

	rec := f.do(http.MethodPost, "/properties/p01/delete", url.Values{}, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, []string{"p01"}, f.del.ids)
}

func TestPostReview(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/properties/p01/reviews", url.Values{"rating": {"5"}, "reviewText": {"Great"}}, true)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/properties/p01?notice=review-added#reviews", rec.Header().Get("Location"))

	rec = f.do(http.MethodPost, "/properties/p01/reviews", url.Values{"rating": {"0"}}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please select a rating")
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login", url.Values{"email": {"owner@example.com"}, "password": {"wrong"}}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password.")

	rec = f.do(http.MethodPost, "/login", url.Values{"email": {"owner@example.com"}, "password": {"Secret1"}, "next": {"//evil.example.com"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?notice=signed-in", rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), testCookie+"=tok-new")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "HttpOnly")
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/register", url.Values{"name": {"A"}, "email": {"a@example.com"}, "password": {"short"}}, false)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 6 characters long")
}

func TestGoogleLoginChecksCSRF(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/login/google", url.Values{"credential": {"id-token"}, "g_csrf_token": {"abc"}}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form := url.Values{"credential": {"id-token"}, "g_csrf_token": {"abc"}}
	req := httptest.NewRequest(http.MethodPost, "/login/google", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: googleCSRFCookie, Value: "abc"})
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"id-token", "http://localhost:8080"}, f.fedArgs)
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/nope", nil, false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestSafeRedirectTarget(t *testing.T) {
	assert.Equal(t, "/", safeRedirectTarget(""))
	assert.Equal(t, "/", safeRedirectTarget("https://evil.example.com"))
	assert.Equal(t, "/", safeRedirectTarget("//evil.example.com"))
	assert.Equal(t, "/my-ratings", safeRedirectTarget("/my-ratings"))
}
