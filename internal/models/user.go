package models

// User is the currently logged-in identity. Authentication is mock:
// any credentials are accepted and the role is derived from the email.
// Only a bcrypt hash of the password ever reaches storage.
type User struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}
