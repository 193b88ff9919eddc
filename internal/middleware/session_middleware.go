package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/config"
	"github.com/jcastror/elfogon-backend/internal/session"
)

const sessionKey = "session"

// SessionMiddleware loads the visitor's session from the cookie token, or
// creates a fresh one when the cookie is absent, expired, or unknown. The
// session is exposed through the gin context; handlers that mutate it call
// SaveSession before redirecting.
type SessionMiddleware struct {
	store session.Store
	cfg   config.SessionConfig
}

func NewSessionMiddleware(store session.Store, cfg config.SessionConfig) *SessionMiddleware {
	return &SessionMiddleware{store: store, cfg: cfg}
}

func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		var sess *session.Session

		token, err := c.Cookie(m.cfg.CookieName)
		if err == nil && token != "" {
			sess, err = m.store.Load(c.Request.Context(), token)
			if err != nil && !errors.Is(err, session.ErrNotFound) {
				log.Error("Failed to load session", err, map[string]interface{}{
					"path": c.Request.URL.Path,
				})
			}
		}

		if sess == nil {
			sess = session.New()
			if err := m.store.Save(c.Request.Context(), sess); err != nil {
				log.Error("Failed to create session", err, nil)
			}
			c.SetCookie(m.cfg.CookieName, sess.Token, int(m.cfg.TTL.Seconds()), "/", "", m.cfg.Secure, true)
			log.Debug("New session created", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
		}

		c.Set(sessionKey, sess)
		if sess.User != nil {
			c.Set("user_id", sess.User.ID)
		}

		c.Next()
	}
}

// RequireLogin redirects anonymous visitors to the login page.
func (m *SessionMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.IsLoggedIn() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SaveSession persists the (possibly mutated) session.
func (m *SessionMiddleware) SaveSession(c *gin.Context) error {
	sess := GetSession(c)
	if sess == nil {
		return nil
	}
	return m.store.Save(c.Request.Context(), sess)
}

// DestroySession deletes the session server-side and drops the cookie.
func (m *SessionMiddleware) DestroySession(c *gin.Context) error {
	sess := GetSession(c)
	if sess == nil {
		return nil
	}
	c.SetCookie(m.cfg.CookieName, "", -1, "/", "", m.cfg.Secure, true)
	return m.store.Delete(c.Request.Context(), sess.Token)
}

// GetSession retrieves the session from the gin context.
func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(sessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// GetUserID returns the logged-in user's ID from the session.
func GetUserID(c *gin.Context) (uint, bool) {
	sess := GetSession(c)
	if sess == nil || sess.User == nil {
		return 0, false
	}
	return sess.User.ID, true
}
