package auth

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/marketmind/marketmind/internal/kv"
	"github.com/marketmind/marketmind/internal/models"
)

// Roles derived from the login email. Authentication is mock: any
// credentials are accepted, there is no real security boundary.
const (
	RoleAdministrator = "Administrator"
	RoleManager       = "Manager"

	adminEmail = "admin@marketmind.test"
)

// ErrMissingCredentials is returned when email or password is empty.
var ErrMissingCredentials = errors.New("please enter both email and password")

// SessionService persists the current logged-in identity in its own
// storage namespace, read at startup and cleared on logout.
type SessionService struct {
	store kv.Store
}

// NewSessionService creates a session service on the given store.
func NewSessionService(store kv.Store) *SessionService {
	return &SessionService{store: store}
}

// Login accepts any non-empty credentials, derives the display name from
// the email local part and the role from the email, and persists the
// session user. The password is stored only as a bcrypt hash.
func (s *SessionService) Login(email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:        email,
		Name:         strings.SplitN(email, "@", 2)[0],
		Role:         RoleManager,
		PasswordHash: string(hash),
	}
	if email == adminEmail {
		user.Role = RoleAdministrator
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, err
	}
	if err := s.store.Set(kv.UserKey, string(raw)); err != nil {
		return models.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// CurrentUser returns the persisted session identity, if any. A corrupt
// snapshot reads as "not logged in".
func (s *SessionService) CurrentUser() (models.User, bool) {
	raw, ok, err := s.store.Get(kv.UserKey)
	if err != nil || !ok {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("error loading session user: %v", err)
		return models.User{}, false
	}
	user.PasswordHash = ""
	return user, true
}

// Logout clears the persisted session.
func (s *SessionService) Logout() error {
	return s.store.Delete(kv.UserKey)
}
