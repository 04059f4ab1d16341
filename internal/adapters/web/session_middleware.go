package web

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
	"homenest/internal/core/port/usecases_port"
)

type userKeyType struct{}

var userKey = userKeyType{}

func contextWithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the signed-in principal, if any.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(userKey).(domain.User)
	return user, ok
}

// SessionCookie describes the cookie that carries the session token.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

func (c SessionCookie) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c SessionCookie) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware resolves the session cookie into a principal. Requests without one pass through anonymously.
func SessionMiddleware(cookie SessionCookie, validateUC usecases_port.ValidateSessionUseCasePort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookie.Name)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := validateUC.Execute(r.Context(), c.Value)
			if err != nil {
				contextkeys.LoggerFromContext(r.Context()).Debug("Dropping invalid session cookie", nil)
				cookie.clear(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := contextWithUser(r.Context(), *user)
			ctx = contextkeys.ContextWithLogger(ctx, contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"uid": user.UID}))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser sends anonymous visitors to the login page and back afterwards.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			target := r.URL.Path
			if r.Method != http.MethodGet {
				target = "/"
			} else if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, "/login?next="+url.QueryEscape(target), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
