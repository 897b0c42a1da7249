package session

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// cookieName is the name of the cookie that carries the session ID.
const cookieName = "oidc_sid"

// janitorInterval is how often idle sessions are cleaned up.
//
// This is a var and not a const so it can be modified for testing purposes.
var janitorInterval = time.Minute

// Manager owns all live sessions, keyed by the session cookie. Sessions that
// stay idle beyond the configured TTL are dropped, which invalidates any
// pending login attempt they held.
type Manager struct {
	sessions *sync.Map
	ttl      time.Duration
	// secure dictates whether the session cookie carries the Secure flag.
	secure bool
}

// NewManager creates a Manager and starts its cleanup loop.
func NewManager(ttl time.Duration, baseURL string) *Manager {
	m := &Manager{
		sessions: &sync.Map{},
		ttl:      ttl,
		secure:   strings.HasPrefix(baseURL, "https://"),
	}

	go func() {
		for range time.Tick(janitorInterval) {
			m.expireIdle(time.Now())
		}
	}()

	return m
}

// Of returns the session for the given request, creating one (and setting the
// session cookie) if the request carries none, or carries an unknown or
// expired ID.
func (m *Manager) Of(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if existing, found := m.sessions.Load(cookie.Value); found {
			sess := existing.(*Session)
			sess.touch()
			return sess
		}
	}

	// Unknown caller, start a fresh session.
	sess := newSession(uuid.NewString())
	m.sessions.Store(sess.ID(), sess)

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    sess.ID(),
		Path:     "/",
		Secure:   m.secure,
		HttpOnly: true,
		// Lax, not Strict: the provider's callback redirect is a cross-site
		// navigation and must still carry the cookie.
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}

// expireIdle drops every session that has been idle for longer than the TTL.
func (m *Manager) expireIdle(now time.Time) {
	m.sessions.Range(func(key, value any) bool {
		sess := value.(*Session)
		if now.Sub(sess.idleSince()) > m.ttl {
			slog.Info("expiring idle session", "sessionID", sess.ID())
			m.sessions.Delete(key)
		}
		return true
	})
}
