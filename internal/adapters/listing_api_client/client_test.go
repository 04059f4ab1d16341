package listing_api_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validID = "64b7f0c2a1b2c3d4e5f60718"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", 0)
}

func validInput() domain.PropertyInput {
	return domain.PropertyInput{
		PropertyName: "Loft",
		Category:     "Rent",
		Price:        1200,
		Location:     "Dhaka",
		ImageLink:    "https://img.example.com/loft.jpg",
		Description:  "Bright loft",
		UserName:     "Olivia",
		UserEmail:    "olivia@example.com",
	}
}

func TestSearchPropertiesSendsFilter(t *testing.T) {
	var gotQuery url.Values
	var gotTrace string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties", r.URL.Path)
		gotQuery = r.URL.Query()
		gotTrace = r.Header.Get("X-Trace-ID")
		_, _ = io.WriteString(w, `[{"_id":"a1","propertyName":"Villa","category":"Sale","price":250000,"description":"x"}]`)
	})

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-42")
	filter := domain.PropertyFilter{Category: "Sale", PriceMin: domain.Price(100000), PriceMax: domain.Price(500000)}

	got, err := client.SearchProperties(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, 250000.0, got[0].Price)

	assert.Equal(t, url.Values{
		"category": {"Sale"},
		"minPrice": {"100000"},
		"maxPrice": {"500000"},
	}, gotQuery)
	assert.Equal(t, "trace-42", gotTrace)
}

func TestSearchPropertiesEmptyFilterHasNoQuery(t *testing.T) {
	var rawQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, `[]`)
	})

	got, err := client.SearchProperties(context.Background(), domain.PropertyFilter{})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "", rawQuery)
}

func TestSearchPropertiesServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := client.SearchProperties(context.Background(), domain.PropertyFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestGetProperty(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		switch r.URL.Path {
		case "/properties/" + validID:
			_, _ = io.WriteString(w, `{"_id":"`+validID+`","propertyName":"Villa","userEmail":"o@x.io"}`)
		default:
			http.NotFound(w, r)
		}
	})

	p, err := client.GetProperty(context.Background(), validID)
	require.NoError(t, err)
	assert.Equal(t, "Villa", p.PropertyName)

	_, err = client.GetProperty(context.Background(), "64b7f0c2a1b2c3d4e5f60719")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	before := atomic.LoadInt32(&calls)
	_, err = client.GetProperty(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
	assert.Equal(t, before, atomic.LoadInt32(&calls), "malformed ids never reach the network")
}

func TestGetPropertyNullBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})
	_, err := client.GetProperty(context.Background(), validID)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestCreateProperty(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"acknowledged":true,"insertedId":"`+validID+`"}`)
	})

	id, err := client.CreateProperty(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, validID, id)
	assert.Equal(t, "Loft", body["propertyName"])
	assert.Equal(t, 1200.0, body["price"])
	assert.NotContains(t, body, "_id")
}

func TestCreatePropertyRejectsInvalidPayload(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	in := validInput()
	in.UserEmail = "not-an-email"
	_, err := client.CreateProperty(context.Background(), in)
	assert.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&calls))
}

func TestUpdateAndDeleteMarkers(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			_, _ = io.WriteString(w, `{"acknowledged":true,"matchedCount":1,"modifiedCount":0}`)
		case http.MethodDelete:
			_, _ = io.WriteString(w, `{"acknowledged":true,"deletedCount":1}`)
		}
	})

	modified, err := client.UpdateProperty(context.Background(), validID, validInput())
	require.NoError(t, err)
	assert.Zero(t, modified)

	deleted, err := client.DeleteProperty(context.Background(), validID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, err = client.DeleteProperty(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestOwnerListings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/properties/my", r.URL.Path)
		assert.Equal(t, "olivia@example.com", r.URL.Query().Get("email"))
		_, _ = io.WriteString(w, `[{"_id":"1"},{"_id":"2"}]`)
	})

	got, err := client.GetPropertiesByOwner(context.Background(), "olivia@example.com")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReviews(t *testing.T) {
	var posted ReviewRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/reviews":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
			_, _ = io.WriteString(w, `{"insertedId":"r-1"}`)
		case r.URL.Path == "/reviews/"+validID:
			_, _ = io.WriteString(w, `[{"_id":"r-1","propertyId":"`+validID+`","rating":4,"reviewText":"Nice"}]`)
		case r.URL.Path == "/reviews/my/ann@example.com":
			_, _ = io.WriteString(w, `[{"_id":"r-2","rating":5}]`)
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	list, err := client.GetPropertyReviews(ctx, validID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Rating)

	mine, err := client.GetReviewsByReviewer(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	id, err := client.CreateReview(ctx, domain.Review{
		PropertyID: validID, PropertyName: "Villa", ReviewerName: "Ann",
		ReviewerEmail: "ann@example.com", Rating: 5, ReviewText: "Great",
	})
	require.NoError(t, err)
	assert.Equal(t, "r-1", id)
	assert.Equal(t, "Villa", posted.PropertyName)

	_, err = client.CreateReview(ctx, domain.Review{PropertyID: validID, ReviewerName: "Ann", ReviewerEmail: "ann@example.com", Rating: 0, ReviewText: "x"})
	assert.Error(t, err)
}
