package oidc

import (
	"context"
	"log/slog"
	"net/url"
)

// Identity is the validated identity record the flow emits once every
// security check has passed. Claims is the userinfo mapping augmented with
// the access token; Roles are capability tags assigned by configuration.
type Identity struct {
	Claims map[string]any
	Roles  []string
}

// Sink receives the validated identity record. The host's session and
// security lifecycle is entirely behind this interface; the flow's only
// obligation is to emit one record per completed login.
type Sink interface {
	Establish(ctx context.Context, identity Identity) error
}

// Flow orchestrates the full relying-party flow: authorization URL
// generation, callback handling and logout URL generation. Each step is
// strictly sequential; there is no internal parallelism and no retry.
type Flow struct {
	client *Client
	sink   Sink
	// roles are attached to every identity this flow establishes.
	roles []string
}

// NewFlow creates a Flow around the given client and identity sink.
func NewFlow(client *Client, sink Sink, roles []string) *Flow {
	return &Flow{client: client, sink: sink, roles: roles}
}

// AuthorizationURL starts a login attempt. See Client.AuthorizationURL.
func (f *Flow) AuthorizationURL(store Store) (string, error) {
	return f.client.AuthorizationURL(store)
}

// HandleCallback processes the provider's callback parameters and, on
// success, returns the validated user-info mapping with the access token
// merged in under "access_token".
//
// If the parameters carry an "error" key the flow fails immediately with a
// ProviderError and no network call is made. Otherwise the state check, the
// code exchange (with its nonce and signature checks) and the userinfo fetch
// run in that order, and the resulting identity record is emitted to the
// sink before the mapping is returned.
func (f *Flow) HandleCallback(ctx context.Context, store Store, params url.Values) (map[string]any, error) {
	if errCode := params.Get("error"); errCode != "" {
		slog.ErrorContext(ctx, "provider called back with error", "error", errCode,
			"description", params.Get("error_description"))
		return nil, &ProviderError{Code: errCode, Description: params.Get("error_description")}
	}

	// CSRF gate. Must pass before the exchange touches the network.
	if err := f.client.VerifyState(ctx, store, params.Get("state")); err != nil {
		return nil, err
	}

	accessToken, _, err := f.client.ExchangeCode(ctx, store, params.Get("code"))
	if err != nil {
		return nil, err
	}

	info, err := f.client.UserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	info["access_token"] = accessToken

	if err := f.sink.Establish(ctx, Identity{Claims: info, Roles: f.roles}); err != nil {
		return nil, err
	}

	return info, nil
}

// LogoutURL builds the provider logout URL and then clears the entire
// session store, ending the relying-party side of the session.
func (f *Flow) LogoutURL(store Store) (string, error) {
	logoutURL := f.client.LogoutURL(store)

	if err := store.Clear(); err != nil {
		return "", &StorageError{Op: "clear", Err: err}
	}

	return logoutURL, nil
}
