package oidc

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/oidconnect/internal/utils/httputils"
)

func TestHTTPTransport_PostForm(t *testing.T) {
	mForm := url.Values{}
	mForm.Set("grant_type", "authorization_code")
	mForm.Set("code", "mockCode")

	// Transport to mock the HTTP request.
	rt := httputils.RoundTripFunc(func(req *http.Request) *http.Response {
		require.Equal(t, http.MethodPost, req.Method)
		require.Equal(t, "https://provider.com/token", req.URL.String())
		require.Equal(t, "application/x-www-form-urlencoded", req.Header.Get("Content-Type"))

		// The body must be the encoded form.
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err, "Failed to read request body")
		require.Equal(t, mForm.Encode(), string(body))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"access_token":"AT"}`)),
		}
	})

	transport := NewHTTPTransportWithClient(&http.Client{Transport: rt})

	res, err := transport.PostForm(context.Background(), "https://provider.com/token", mForm)
	require.NoError(t, err, "Expected the request to pass")
	require.Equal(t, http.StatusOK, res.Status)
	require.JSONEq(t, `{"access_token":"AT"}`, string(res.Body))
}

func TestHTTPTransport_Get(t *testing.T) {
	// Transport to mock the HTTP request.
	rt := httputils.RoundTripFunc(func(req *http.Request) *http.Response {
		require.Equal(t, http.MethodGet, req.Method)
		require.Equal(t, "https://provider.com/userinfo?schema=openid", req.URL.String())
		require.Equal(t, "Bearer mockAccessToken", req.Header.Get("Authorization"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"sub":"123"}`)),
		}
	})

	transport := NewHTTPTransportWithClient(&http.Client{Transport: rt})

	headers := map[string]string{"Authorization": "Bearer mockAccessToken"}
	res, err := transport.Get(context.Background(), "https://provider.com/userinfo?schema=openid", headers)
	require.NoError(t, err, "Expected the request to pass")
	require.Equal(t, http.StatusOK, res.Status)
	require.JSONEq(t, `{"sub":"123"}`, string(res.Body))
}

func TestNewHTTPTransport_Proxy(t *testing.T) {
	t.Run("Without proxy", func(t *testing.T) {
		transport, err := NewHTTPTransport("", 0)
		require.NoError(t, err, "Failed to create transport")
		require.Nil(t, transport.client.Transport, "Expected the default RoundTripper")
	})

	t.Run("With proxy", func(t *testing.T) {
		transport, err := NewHTTPTransport("proxy.internal", 3128)
		require.NoError(t, err, "Failed to create transport")

		inner, ok := transport.client.Transport.(*http.Transport)
		require.True(t, ok, "Expected an *http.Transport")

		proxyURL, err := inner.Proxy(&http.Request{URL: &url.URL{Scheme: "https", Host: "provider.com"}})
		require.NoError(t, err, "Failed to resolve proxy URL")
		require.Equal(t, "http://proxy.internal:3128", proxyURL.String())
	})
}
