package controller

import (
	"github.com/jcastror/elfogon-backend/internal/session"
)

// sessionUser unwraps the identity for templates; nil for anonymous visitors.
func sessionUser(sess *session.Session) *session.Identity {
	if sess == nil {
		return nil
	}
	return sess.User
}
