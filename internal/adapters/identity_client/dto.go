package identity_client

import "homenest/internal/core/domain"

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInRequest = signUpRequest

type updateProfileRequest struct {
	IDToken           string `json:"idToken"`
	DisplayName       string `json:"displayName,omitempty"`
	PhotoURL          string `json:"photoUrl,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type signInWithIdpRequest struct {
	PostBody            string `json:"postBody"`
	RequestURI          string `json:"requestUri"`
	ReturnIdpCredential bool   `json:"returnIdpCredential"`
	ReturnSecureToken   bool   `json:"returnSecureToken"`
}

// accountResponse covers the fields shared by the sign-up, sign-in, update and IdP responses.
type accountResponse struct {
	LocalID        string `json:"localId"`
	Email          string `json:"email"`
	DisplayName    string `json:"displayName"`
	PhotoURL       string `json:"photoUrl"`
	ProfilePicture string `json:"profilePicture"`
	IDToken        string `json:"idToken"`
}

func (r accountResponse) toDomain() domain.User {
	photo := r.PhotoURL
	if photo == "" {
		photo = r.ProfilePicture
	}
	return domain.User{
		UID:         r.LocalID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		PhotoURL:    photo,
	}
}

type lookupResponse struct {
	Users []accountResponse `json:"users"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
