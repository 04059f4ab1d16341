package identity_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

const DefaultBaseURL = "https://identitytoolkit.googleapis.com"

// Client calls the Identity Toolkit REST API of the identity provider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("identity provider API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ProviderError is a refusal reported by the identity provider.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("identity provider refused request (%d): %s", e.Status, e.Message)
}

// Unwrap maps provider codes onto domain errors.
func (e *ProviderError) Unwrap() error {
	switch e.Code() {
	case "EMAIL_EXISTS":
		return domain.ErrEmailInUse
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED", "INVALID_IDP_RESPONSE", "INVALID_EMAIL":
		return domain.ErrInvalidCredentials
	case "INVALID_ID_TOKEN", "TOKEN_EXPIRED", "USER_NOT_FOUND":
		return domain.ErrSessionInvalid
	default:
		return nil
	}
}

// Code strips the human readable suffix: "WEAK_PASSWORD : Password should be..." -> "WEAK_PASSWORD".
func (e *ProviderError) Code() string {
	code, _, _ := strings.Cut(e.Message, " ")
	return strings.TrimSpace(code)
}

func (c *Client) call(ctx context.Context, endpoint string, body, out interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "IdentityClient",
		"endpoint":  endpoint,
	})

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode identity request: %w", err)
	}

	u := fmt.Sprintf("%s/v1/accounts:%s?%s", c.baseURL, endpoint, url.Values{"key": {c.apiKey}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	logger.Debug("Sending request to identity provider", nil)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Failed to perform request to identity provider", err, nil)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		msg := strings.TrimSpace(string(bodyBytes))
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		perr := &ProviderError{Status: resp.StatusCode, Message: msg}
		logger.Warn("Identity provider returned an error", port.Fields{"status_code": resp.StatusCode, "code": perr.Code()})
		return perr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("Failed to decode identity provider response", err, nil)
		return fmt.Errorf("failed to decode identity response: %w", err)
	}
	return nil
}

// SignUp creates the account, then stores the display name and photo on its profile.
func (c *Client) SignUp(ctx context.Context, reg domain.Registration) (*domain.User, error) {
	var created accountResponse
	if err := c.call(ctx, "signUp", signUpRequest{Email: reg.Email, Password: reg.Password, ReturnSecureToken: true}, &created); err != nil {
		return nil, err
	}

	var updated accountResponse
	err := c.call(ctx, "update", updateProfileRequest{
		IDToken:     created.IDToken,
		DisplayName: reg.Name,
		PhotoURL:    reg.PhotoURL,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("account created but profile update failed: %w", err)
	}

	user := created.toDomain()
	user.DisplayName = reg.Name
	user.PhotoURL = reg.PhotoURL
	if updated.DisplayName != "" {
		user.DisplayName = updated.DisplayName
	}
	if updated.PhotoURL != "" {
		user.PhotoURL = updated.PhotoURL
	}
	return &user, nil
}

// SignInWithPassword verifies the credentials and loads the profile.
func (c *Client) SignInWithPassword(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	var signedIn accountResponse
	if err := c.call(ctx, "signInWithPassword", signInRequest{Email: creds.Email, Password: creds.Password, ReturnSecureToken: true}, &signedIn); err != nil {
		return nil, err
	}

	user := signedIn.toDomain()
	if user.PhotoURL != "" || signedIn.IDToken == "" {
		return &user, nil
	}

	// signInWithPassword does not always return the photo
	var lookup lookupResponse
	if err := c.call(ctx, "lookup", lookupRequest{IDToken: signedIn.IDToken}, &lookup); err == nil && len(lookup.Users) > 0 {
		profile := lookup.Users[0].toDomain()
		if profile.DisplayName != "" {
			user.DisplayName = profile.DisplayName
		}
		user.PhotoURL = profile.PhotoURL
	}
	return &user, nil
}

// SignInWithGoogle exchanges a Google ID token for a provider account.
func (c *Client) SignInWithGoogle(ctx context.Context, idToken, requestURI string) (*domain.User, error) {
	postBody := url.Values{"id_token": {idToken}, "providerId": {"google.com"}}.Encode()

	var res accountResponse
	err := c.call(ctx, "signInWithIdp", signInWithIdpRequest{
		PostBody:            postBody,
		RequestURI:          requestURI,
		ReturnIdpCredential: true,
		ReturnSecureToken:   true,
	}, &res)
	if err != nil {
		return nil, err
	}

	user := res.toDomain()
	return &user, nil
}
