package oidc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Response is what a Transport returns: the HTTP status code and the raw
// response body. Decoding the body is the caller's concern.
type Response struct {
	Status int
	Body   []byte
}

// Transport issues the two kinds of requests the flow needs. Timeouts,
// proxying and connection reuse live behind this interface; the flow treats
// any Transport failure as a non-retryable TransportError.
type Transport interface {
	// PostForm sends a form-encoded POST request to the given URL.
	PostForm(ctx context.Context, rawURL string, form url.Values) (Response, error)

	// Get sends a GET request with the given headers to the given URL.
	Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error)
}

// HTTPTransport implements Transport on top of net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates an HTTPTransport. If proxyHost is non-empty, all
// requests go through the given HTTP proxy.
func NewHTTPTransport(proxyHost string, proxyPort int) (*HTTPTransport, error) {
	client := &http.Client{}

	if proxyHost != "" {
		proxyURL, err := url.Parse(fmt.Sprintf("http://%s:%d", proxyHost, proxyPort))
		if err != nil {
			return nil, fmt.Errorf("error in url.Parse call: %w", err)
		}
		client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
	}

	return &HTTPTransport{client: client}, nil
}

// NewHTTPTransportWithClient creates an HTTPTransport around the given client.
// Intended for tests that override the client's RoundTripper.
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) PostForm(ctx context.Context, rawURL string, form url.Values) (Response, error) {
	// Form the HTTP request.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, &TransportError{Err: fmt.Errorf("error in http.NewRequestWithContext call: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return t.do(req)
}

func (t *HTTPTransport) Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error) {
	// Form the HTTP request.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, &TransportError{Err: fmt.Errorf("error in http.NewRequestWithContext call: %w", err)}
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return t.do(req)
}

// do executes the request and drains the body.
func (t *HTTPTransport) do(req *http.Request) (Response, error) {
	res, err := t.client.Do(req)
	if err != nil {
		return Response{}, &TransportError{Err: fmt.Errorf("error in httpClient.Do call: %w", err)}
	}
	// Close response body upon return.
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Response{}, &TransportError{Err: fmt.Errorf("error in io.ReadAll call: %w", err)}
	}

	return Response{Status: res.StatusCode, Body: body}, nil
}
