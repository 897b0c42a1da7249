package handler

import (
	"context"
	"net/url"

	"github.com/shivanshkc/oidconnect/pkg/oidc"
)

// mockFlow is a mock implementation of the Flow interface.
type mockFlow struct {
	// To mock the AuthorizationURL method.
	authURL    string
	errAuthURL error

	// To mock the HandleCallback method.
	argParams   url.Values
	info        map[string]any
	errCallback error

	// To mock the LogoutURL method.
	logoutURL    string
	errLogoutURL error
}

func (m *mockFlow) AuthorizationURL(store oidc.Store) (string, error) {
	if m.errAuthURL != nil {
		return "", m.errAuthURL
	}
	return m.authURL, nil
}

func (m *mockFlow) HandleCallback(_ context.Context, store oidc.Store, params url.Values) (map[string]any, error) {
	m.argParams = params
	if m.errCallback != nil {
		return nil, m.errCallback
	}
	return m.info, nil
}

func (m *mockFlow) LogoutURL(store oidc.Store) (string, error) {
	if m.errLogoutURL != nil {
		return "", m.errLogoutURL
	}
	return m.logoutURL, nil
}
