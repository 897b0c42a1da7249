package oidc

// Keys under which the flow keeps its pending values in the session store.
const (
	// KeyState holds the anti-CSRF token issued with the authorization URL.
	KeyState = "oidc.state"
	// KeyNonce holds the replay-protection token bound into the ID token.
	KeyNonce = "oidc.nonce"
	// KeyIDTokenHint holds the raw ID token for the provider's logout endpoint.
	KeyIDTokenHint = "oidc.id_token_hint"
)

// Store is the per-session key-value storage the flow keeps its pending
// state, nonce and ID-token-hint values in. Implementations are scoped to one
// user session; concurrent login flows for different sessions never share a
// Store instance.
type Store interface {
	// Set stores the value under the given key.
	Set(key, value string) error

	// Get returns the value under the given key. The second return value is
	// false if the key is absent.
	Get(key string) (string, bool)

	// Remove deletes the value under the given key.
	Remove(key string) error

	// Clear deletes everything in the session, not just the OIDC keys.
	Clear() error
}
