package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcastror/elfogon-backend/internal/app/model"
)

// Identity is the minimal user identity held in the session after login.
// It never carries the password hash.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Session is the per-browser-visit state bag, keyed by a client-held cookie
// token. It holds the logged-in identity and the working cart. The identity
// is the only field the rest of the application trusts; everything else is
// re-validated server-side on use.
type Session struct {
	Token     string     `json:"token"`
	User      *Identity  `json:"user,omitempty"`
	Cart      model.Cart `json:"cart"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// New creates an empty session with a fresh token.
func New() *Session {
	now := time.Now().UTC()
	return &Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsLoggedIn reports whether the session carries a user identity.
func (s *Session) IsLoggedIn() bool {
	return s.User != nil
}
