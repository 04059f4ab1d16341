package domain

import (
	"net/mail"
	"strings"
	"unicode"
)

// User is the signed-in principal as known to the identity provider.
type User struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
}

func (u User) IsZero() bool {
	return u.UID == "" && u.Email == ""
}

// Name prefers the display name and falls back to the email.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}

// Registration is the sign-up form.
type Registration struct {
	Name     string
	Email    string
	PhotoURL string
	Password string
}

const MinPasswordLength = 6

func (r Registration) Validate() error {
	verr := NewValidationError()
	if strings.TrimSpace(r.Name) == "" {
		verr.Add("name", "Name is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		verr.Add("email", "Enter a valid email address")
	}
	if r.PhotoURL != "" && !isAbsoluteURL(r.PhotoURL) {
		verr.Add("photoURL", "Photo URL must be an absolute http(s) URL")
	}
	if msg := CheckPassword(r.Password); msg != "" {
		verr.Add("password", msg)
	}
	return verr.OrNil()
}

// CheckPassword returns a message describing the first unmet rule, or "".
func CheckPassword(password string) string {
	if len([]rune(password)) < MinPasswordLength {
		return "Password must be at least 6 characters long"
	}
	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
	}
	if !hasUpper {
		return "Password must contain at least one uppercase letter"
	}
	if !hasLower {
		return "Password must contain at least one lowercase letter"
	}
	return ""
}

// Credentials is the email/password login form.
type Credentials struct {
	Email    string
	Password string
}

// Session is a signed-in principal plus the token the browser keeps.
type Session struct {
	User  User
	Token string
}
