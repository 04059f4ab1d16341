package web

import (
	"errors"
	"net/http"
	"strings"

	"homenest/internal/contextkeys"
	"homenest/internal/core/domain"
	"homenest/internal/core/port"
)

// googleCSRFCookie is set by Google Identity Services and echoed in the form.
const googleCSRFCookie = "g_csrf_token"

type loginPage struct {
	Email string
	Next  string
}

type registerPage struct {
	Registration domain.Registration
	Next         string
	FieldError   map[string]string
}

// LoginForm handles GET /login.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "login", h.pageContext(r, "Login"), loginPage{Next: safeRedirectTarget(r.URL.Query().Get("next"))})
}

// Login handles POST /login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	creds := domain.Credentials{
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		Password: r.PostForm.Get("password"),
	}
	next := safeRedirectTarget(r.PostForm.Get("next"))

	session, err := h.uc.Login.Execute(r.Context(), creds)
	if err != nil {
		pc := h.pageContext(r, "Login")
		status := http.StatusUnauthorized
		if errors.Is(err, domain.ErrInvalidCredentials) {
			pc.Error = "Invalid email or password."
		} else {
			status = http.StatusBadGateway
			pc.Error = "Login failed. Please try again."
			contextkeys.LoggerFromContext(r.Context()).Error("Login failed", err, nil)
		}
		h.render(w, r, status, "login", pc, loginPage{Email: creds.Email, Next: next})
		return
	}

	h.cookie.set(w, session.Token)
	http.Redirect(w, r, withNotice(next, "signed-in"), http.StatusSeeOther)
}

// GoogleLogin handles the Google Identity Services credential POST to /login/google.
func (h *Handlers) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GoogleLogin"})
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	csrfCookie, err := r.Cookie(googleCSRFCookie)
	if err != nil || csrfCookie.Value == "" || csrfCookie.Value != r.PostForm.Get(googleCSRFCookie) {
		logger.Warn("Google sign-in CSRF check failed", nil)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	credential := r.PostForm.Get("credential")
	if credential == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	session, err := h.uc.FederatedLogin.Execute(r.Context(), credential, h.publicURL)
	if err != nil {
		logger.Error("Google sign-in failed", err, nil)
		pc := h.pageContext(r, "Login")
		pc.Error = "Google sign-in failed. Please try again."
		h.render(w, r, http.StatusUnauthorized, "login", pc, loginPage{Next: "/"})
		return
	}

	h.cookie.set(w, session.Token)
	http.Redirect(w, r, withNotice("/", "signed-in"), http.StatusSeeOther)
}

// RegisterForm handles GET /register.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "register", h.pageContext(r, "Register"), registerPage{Next: safeRedirectTarget(r.URL.Query().Get("next"))})
}

// Register handles POST /register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	reg := domain.Registration{
		Name:     strings.TrimSpace(r.PostForm.Get("name")),
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
		PhotoURL: strings.TrimSpace(r.PostForm.Get("photoURL")),
		Password: r.PostForm.Get("password"),
	}
	next := safeRedirectTarget(r.PostForm.Get("next"))

	session, err := h.uc.Register.Execute(r.Context(), reg)
	if err != nil {
		pc := h.pageContext(r, "Register")
		data := registerPage{Registration: reg, Next: next}
		data.Registration.Password = ""

		var verr *domain.ValidationError
		status := http.StatusUnprocessableEntity
		switch {
		case errors.As(err, &verr):
			data.FieldError = verr.Fields
			pc.Error = "Please fix the highlighted fields."
		case errors.Is(err, domain.ErrEmailInUse):
			data.FieldError = map[string]string{"email": "An account with this email already exists"}
			pc.Error = "Registration failed."
			status = http.StatusConflict
		default:
			contextkeys.LoggerFromContext(r.Context()).Error("Registration failed", err, nil)
			pc.Error = "Registration failed. Please try again."
			status = http.StatusBadGateway
		}
		h.render(w, r, status, "register", pc, data)
		return
	}

	h.cookie.set(w, session.Token)
	http.Redirect(w, r, withNotice(next, "registered"), http.StatusSeeOther)
}

// Logout handles POST /logout.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookie.clear(w)
	http.Redirect(w, r, withNotice("/", "signed-out"), http.StatusSeeOther)
}

// withNotice appends a notice code to a local redirect target.
func withNotice(target, code string) string {
	if strings.Contains(target, "?") {
		return target + "&notice=" + code
	}
	return target + "?notice=" + code
}
