package identity_client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"homenest/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	endpoint string
	key      string
	body     map[string]interface{}
}

func newProvider(t *testing.T, responses map[string]string, status map[string]int) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := r.URL.Path[len("/v1/accounts:"):]
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, recorded{endpoint: endpoint, key: r.URL.Query().Get("key"), body: body})

		if code, ok := status[endpoint]; ok {
			w.WriteHeader(code)
		}
		_, _ = io.WriteString(w, responses[endpoint])
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "api-key", 0)
	require.NoError(t, err)
	return client, &calls
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("", "", 0)
	assert.Error(t, err)
}

func TestSignUpStoresProfile(t *testing.T) {
	client, calls := newProvider(t, map[string]string{
		"signUp": `{"localId":"uid-1","email":"ann@example.com","idToken":"id-tok"}`,
		"update": `{"localId":"uid-1","email":"ann@example.com","displayName":"Ann","photoUrl":"https://p/ann.png"}`,
	}, nil)

	user, err := client.SignUp(context.Background(), domain.Registration{
		Name: "Ann", Email: "ann@example.com", Password: "Secret1", PhotoURL: "https://p/ann.png",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.User{UID: "uid-1", Email: "ann@example.com", DisplayName: "Ann", PhotoURL: "https://p/ann.png"}, *user)

	require.Len(t, *calls, 2)
	assert.Equal(t, "api-key", (*calls)[0].key)
	assert.Equal(t, true, (*calls)[0].body["returnSecureToken"])
	assert.Equal(t, "id-tok", (*calls)[1].body["idToken"])
	assert.Equal(t, "Ann", (*calls)[1].body["displayName"])
}

func TestSignUpEmailExists(t *testing.T) {
	client, _ := newProvider(t, map[string]string{
		"signUp": `{"error":{"code":400,"message":"EMAIL_EXISTS"}}`,
	}, map[string]int{"signUp": http.StatusBadRequest})

	_, err := client.SignUp(context.Background(), domain.Registration{Email: "a@b.c", Password: "Secret1"})
	assert.ErrorIs(t, err, domain.ErrEmailInUse)
}

func TestSignInErrors(t *testing.T) {
	for _, msg := range []string{"EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED"} {
		t.Run(msg, func(t *testing.T) {
			client, _ := newProvider(t, map[string]string{
				"signInWithPassword": `{"error":{"code":400,"message":"` + msg + `"}}`,
			}, map[string]int{"signInWithPassword": http.StatusBadRequest})

			_, err := client.SignInWithPassword(context.Background(), domain.Credentials{Email: "a@b.c", Password: "x"})
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}

	client, _ := newProvider(t, map[string]string{
		"signInWithPassword": `{"error":{"code":400,"message":"TOO_MANY_ATTEMPTS_TRY_LATER : Access disabled"}}`,
	}, map[string]int{"signInWithPassword": http.StatusBadRequest})
	_, err := client.SignInWithPassword(context.Background(), domain.Credentials{Email: "a@b.c", Password: "x"})
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "TOO_MANY_ATTEMPTS_TRY_LATER", perr.Code())
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestSignInLooksUpPhoto(t *testing.T) {
	client, calls := newProvider(t, map[string]string{
		"signInWithPassword": `{"localId":"uid-1","email":"ann@example.com","displayName":"Ann","idToken":"tok"}`,
		"lookup":             `{"users":[{"localId":"uid-1","email":"ann@example.com","displayName":"Ann","photoUrl":"https://p/ann.png"}]}`,
	}, nil)

	user, err := client.SignInWithPassword(context.Background(), domain.Credentials{Email: "ann@example.com", Password: "Secret1"})
	require.NoError(t, err)
	assert.Equal(t, "https://p/ann.png", user.PhotoURL)
	assert.Len(t, *calls, 2)
}

func TestSignInWithGoogle(t *testing.T) {
	client, calls := newProvider(t, map[string]string{
		"signInWithIdp": `{"localId":"g-1","email":"g@example.com","displayName":"Gee","photoUrl":"https://p/g.png"}`,
	}, nil)

	user, err := client.SignInWithGoogle(context.Background(), "google-token", "http://localhost:8080/login")
	require.NoError(t, err)
	assert.Equal(t, "g-1", user.UID)

	require.Len(t, *calls, 1)
	post, err := url.ParseQuery((*calls)[0].body["postBody"].(string))
	require.NoError(t, err)
	assert.Equal(t, "google-token", post.Get("id_token"))
	assert.Equal(t, "google.com", post.Get("providerId"))
	assert.Equal(t, "http://localhost:8080/login", (*calls)[0].body["requestUri"])
}
