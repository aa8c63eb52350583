package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/marketmind/marketmind/internal/auth"
)

// LoginHandler godoc
// @Summary Mock login: accepts any credentials and returns a JWT token
// @Description The role is derived from the email; no password check is
// @Description performed beyond presence. Not a real security boundary.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := session.Login(creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingCredentials) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not log in", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(LoginResult{Token: token, User: user}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// LogoutHandler godoc
// @Summary Clear the persisted session
// @Tags auth
// @Success 204 "Logged out"
// @Router /logout [post]
// @Security BearerAuth
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := session.Logout(); err != nil {
		http.Error(w, "could not log out", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CurrentUserHandler godoc
// @Summary Return the persisted session identity
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {string} string "No session"
// @Router /me [get]
// @Security BearerAuth
func CurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := session.CurrentUser()
	if !ok {
		http.Error(w, "not logged in", http.StatusNotFound)
		return
	}
	if err := writeJSON(w, http.StatusOK, user); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
