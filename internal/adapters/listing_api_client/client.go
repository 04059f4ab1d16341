package listing_api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/contracts"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client talks to the remote listing service (properties and reviews).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client; a zero timeout means requests are bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var errNotFound = errors.New("listing service returned 404")

// doRequest sends one request with trace propagation and decodes a 2xx JSON body into out.
func (c *Client) doRequest(ctx context.Context, logger port.LoggerPort, method, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger.Debug("Sending request to listing-service", port.Fields{"method": method, "url": endpoint})
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to perform request to listing-service", err, nil)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("listing service returned non-success status code %d: %s", resp.StatusCode, string(bodyBytes))
		logger.Error("Received error response from listing-service", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Failed to decode response from listing-service", err, nil)
		return fmt.Errorf("failed to decode listing-service response: %w", err)
	}
	return nil
}

func (c *Client) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ListingApiClient",
		"method":    method,
	})
}

// checkID rejects anything that cannot be a listing id before it reaches the network.
func checkID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func mapProperties(list []PropertyResponse) []domain.Property {
	result := make([]domain.Property, len(list))
	for i, dto := range list {
		result[i] = dto.toDomain()
	}
	return result
}

func mapReviews(list []ReviewResponse) []domain.Review {
	result := make([]domain.Review, len(list))
	for i, dto := range list {
		result[i] = dto.toDomain()
	}
	return result
}

// SearchProperties sends GET /properties with exactly the non-empty filter fields.
func (c *Client) SearchProperties(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	clientLogger := c.logger(ctx, "SearchProperties")

	var list []PropertyResponse
	if err := c.doRequest(ctx, clientLogger, http.MethodGet, "/properties", filter.QueryParams(), nil, &list); err != nil {
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"objects_count": len(list)})
	return mapProperties(list), nil
}

func (c *Client) GetFeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	clientLogger := c.logger(ctx, "GetFeaturedProperties")

	var list []PropertyResponse
	if err := c.doRequest(ctx, clientLogger, http.MethodGet, "/properties/featured", nil, nil, &list); err != nil {
		return nil, err
	}
	return mapProperties(list), nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	clientLogger := c.logger(ctx, "GetProperty").WithFields(port.Fields{"property_id": id})
	if err := checkID(id); err != nil {
		clientLogger.Warn("Malformed property id", nil)
		return nil, err
	}

	var dto *PropertyResponse
	err := c.doRequest(ctx, clientLogger, http.MethodGet, "/properties/"+url.PathEscape(id), nil, nil, &dto)
	if errors.Is(err, errNotFound) || (err == nil && (dto == nil || dto.ID == "")) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}

	p := dto.toDomain()
	return &p, nil
}

func (c *Client) GetPropertiesByOwner(ctx context.Context, email string) ([]domain.Property, error) {
	clientLogger := c.logger(ctx, "GetPropertiesByOwner")

	var list []PropertyResponse
	query := url.Values{"email": {email}}
	if err := c.doRequest(ctx, clientLogger, http.MethodGet, "/properties/my", query, nil, &list); err != nil {
		return nil, err
	}
	return mapProperties(list), nil
}

func (c *Client) CreateProperty(ctx context.Context, in domain.PropertyInput) (string, error) {
	clientLogger := c.logger(ctx, "CreateProperty")

	body := propertyRequestFrom(in)
	if err := validatePayload(contracts.PropertyPayloadV1, body); err != nil {
		clientLogger.Error("Outgoing property payload violates contract", err, nil)
		return "", err
	}

	var res InsertResponse
	if err := c.doRequest(ctx, clientLogger, http.MethodPost, "/properties", nil, body, &res); err != nil {
		return "", err
	}
	clientLogger.Info("Property created", port.Fields{"inserted_id": res.InsertedID})
	return res.InsertedID, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, in domain.PropertyInput) (int64, error) {
	clientLogger := c.logger(ctx, "UpdateProperty").WithFields(port.Fields{"property_id": id})
	if err := checkID(id); err != nil {
		return 0, err
	}

	body := propertyRequestFrom(in)
	if err := validatePayload(contracts.PropertyPayloadV1, body); err != nil {
		clientLogger.Error("Outgoing property payload violates contract", err, nil)
		return 0, err
	}

	var res UpdateResponse
	err := c.doRequest(ctx, clientLogger, http.MethodPut, "/properties/"+url.PathEscape(id), nil, body, &res)
	if errors.Is(err, errNotFound) {
		return 0, domain.ErrPropertyNotFound
	}
	if err != nil {
		return 0, err
	}
	clientLogger.Info("Property update acknowledged", port.Fields{"modified_count": res.ModifiedCount})
	return res.ModifiedCount, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) (int64, error) {
	clientLogger := c.logger(ctx, "DeleteProperty").WithFields(port.Fields{"property_id": id})
	if err := checkID(id); err != nil {
		return 0, err
	}

	var res DeleteResponse
	err := c.doRequest(ctx, clientLogger, http.MethodDelete, "/properties/"+url.PathEscape(id), nil, nil, &res)
	if errors.Is(err, errNotFound) {
		return 0, domain.ErrPropertyNotFound
	}
	if err != nil {
		return 0, err
	}
	clientLogger.Info("Property delete acknowledged", port.Fields{"deleted_count": res.DeletedCount})
	return res.DeletedCount, nil
}

func (c *Client) GetPropertyReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	clientLogger := c.logger(ctx, "GetPropertyReviews").WithFields(port.Fields{"property_id": propertyID})
	if err := checkID(propertyID); err != nil {
		return nil, err
	}

	var list []ReviewResponse
	err := c.doRequest(ctx, clientLogger, http.MethodGet, "/reviews/"+url.PathEscape(propertyID), nil, nil, &list)
	if errors.Is(err, errNotFound) {
		return []domain.Review{}, nil
	}
	if err != nil {
		return nil, err
	}
	return mapReviews(list), nil
}

func (c *Client) GetReviewsByReviewer(ctx context.Context, email string) ([]domain.Review, error) {
	clientLogger := c.logger(ctx, "GetReviewsByReviewer")

	var list []ReviewResponse
	if err := c.doRequest(ctx, clientLogger, http.MethodGet, "/reviews/my/"+url.PathEscape(email), nil, nil, &list); err != nil {
		return nil, err
	}
	return mapReviews(list), nil
}

func (c *Client) CreateReview(ctx context.Context, review domain.Review) (string, error) {
	clientLogger := c.logger(ctx, "CreateReview").WithFields(port.Fields{"property_id": review.PropertyID})

	body := ReviewRequest{
		PropertyID:    review.PropertyID,
		PropertyName:  review.PropertyName,
		ReviewerName:  review.ReviewerName,
		ReviewerEmail: review.ReviewerEmail,
		ReviewerPhoto: review.ReviewerPhoto,
		Rating:        review.Rating,
		ReviewText:    review.ReviewText,
	}
	if err := validatePayload(contracts.ReviewPayloadV1, body); err != nil {
		clientLogger.Error("Outgoing review payload violates contract", err, nil)
		return "", err
	}

	var res InsertResponse
	if err := c.doRequest(ctx, clientLogger, http.MethodPost, "/reviews", nil, body, &res); err != nil {
		return "", err
	}
	clientLogger.Info("Review created", port.Fields{"inserted_id": res.InsertedID})
	return res.InsertedID, nil
}

func validatePayload(key string, body interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return contracts.Validate(key, raw)
}
