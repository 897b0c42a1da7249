package oidc

import (
	"context"
	"net/url"
)

// mockTransport is a mock implementation of the Transport interface.
type mockTransport struct {
	// To record PostForm calls.
	postCalls  int
	argPostURL string
	argForm    url.Values
	postRes    Response
	errPost    error

	// To record Get calls.
	getCalls   int
	argGetURL  string
	argHeaders map[string]string
	getRes     Response
	errGet     error
}

func (m *mockTransport) PostForm(_ context.Context, rawURL string, form url.Values) (Response, error) {
	m.postCalls++
	m.argPostURL = rawURL
	m.argForm = form
	if m.errPost != nil {
		return Response{}, m.errPost
	}
	return m.postRes, nil
}

func (m *mockTransport) Get(_ context.Context, rawURL string, headers map[string]string) (Response, error) {
	m.getCalls++
	m.argGetURL = rawURL
	m.argHeaders = headers
	if m.errGet != nil {
		return Response{}, m.errGet
	}
	return m.getRes, nil
}

// mockSink is a mock implementation of the Sink interface.
type mockSink struct {
	calls       int
	argIdentity Identity
	errSink     error
}

func (m *mockSink) Establish(_ context.Context, identity Identity) error {
	m.calls++
	m.argIdentity = identity
	return m.errSink
}
