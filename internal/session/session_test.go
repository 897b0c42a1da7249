package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSession_StoreSemantics(t *testing.T) {
	sess := newSession("mockID")

	// Absent key.
	_, found := sess.Get("state")
	require.False(t, found, "Expected key to be absent")

	// Set then get.
	require.NoError(t, sess.Set("state", "value1"))
	value, found := sess.Get("state")
	require.True(t, found, "Expected key to be present")
	require.Equal(t, "value1", value)

	// Overwrite.
	require.NoError(t, sess.Set("state", "value2"))
	value, _ = sess.Get("state")
	require.Equal(t, "value2", value)

	// Remove.
	require.NoError(t, sess.Remove("state"))
	_, found = sess.Get("state")
	require.False(t, found, "Expected key to have been removed")

	// Clear drops everything.
	require.NoError(t, sess.Set("state", "value"))
	require.NoError(t, sess.Set("nonce", "value"))
	require.NoError(t, sess.Clear())
	_, foundState := sess.Get("state")
	_, foundNonce := sess.Get("nonce")
	require.False(t, foundState, "Expected the session to be empty")
	require.False(t, foundNonce, "Expected the session to be empty")
}

func TestManager_Of(t *testing.T) {
	manager := NewManager(time.Hour, "http://localhost:8080")

	// First request carries no cookie, so a session is created.
	w := httptest.NewRecorder()
	first := manager.Of(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, first, "Expected a session")

	// A session cookie must have been issued.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1, "Expected exactly one cookie")
	require.Equal(t, cookieName, cookies[0].Name)
	require.Equal(t, first.ID(), cookies[0].Value)
	require.True(t, cookies[0].HttpOnly, "Expected an HttpOnly cookie")
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	require.False(t, cookies[0].Secure, "Expected no Secure flag for a plain http base URL")

	// A second request with the cookie gets the same session back.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])
	second := manager.Of(httptest.NewRecorder(), r)
	require.Same(t, first, second, "Expected the same session instance")

	// An unknown cookie value yields a fresh session.
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookieName, Value: "unknown"})
	third := manager.Of(httptest.NewRecorder(), r)
	require.NotEqual(t, first.ID(), third.ID(), "Expected a fresh session")
}

func TestManager_SecureCookie(t *testing.T) {
	manager := NewManager(time.Hour, "https://rp.com")

	w := httptest.NewRecorder()
	manager.Of(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1, "Expected exactly one cookie")
	require.True(t, cookies[0].Secure, "Expected the Secure flag for an https base URL")
}

func TestManager_ExpireIdle(t *testing.T) {
	manager := NewManager(time.Minute, "http://localhost:8080")

	w := httptest.NewRecorder()
	sess := manager.Of(w, httptest.NewRequest(http.MethodGet, "/", nil))
	cookie := w.Result().Cookies()[0]

	// Not idle for long enough, must survive.
	manager.expireIdle(time.Now())
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	require.Same(t, sess, manager.Of(httptest.NewRecorder(), r), "Expected the session to survive")

	// Idle beyond the TTL, must be dropped.
	manager.expireIdle(time.Now().Add(2 * time.Minute))
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	require.NotEqual(t, sess.ID(), manager.Of(httptest.NewRecorder(), r).ID(),
		"Expected the expired session to have been replaced")
}
