package errutils

import (
	"errors"
	"net/http"
)

// HTTPError implements the error interface and holds everything needed to
// serve the error over REST.
type HTTPError struct {
	Status int    `json:"-"`
	Code   string `json:"code"`
	Reason string `json:"reason,omitempty"`
}

func (h *HTTPError) Error() string {
	if h.Reason == "" {
		return h.Code
	}
	return h.Code + ": " + h.Reason
}

// WithReasonStr returns a copy of the error with the given reason attached.
func (h *HTTPError) WithReasonStr(reason string) *HTTPError {
	clone := *h
	clone.Reason = reason
	return &clone
}

// WithReasonErr returns a copy of the error with the given error's message
// attached as the reason.
func (h *HTTPError) WithReasonErr(err error) *HTTPError {
	return h.WithReasonStr(err.Error())
}

// ToHTTPError converts any error to an *HTTPError. Errors that are not
// HTTPErrors map to an internal server error without leaking their message.
func ToHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return InternalServerError()
}

func BadRequest() *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Code: "BAD_REQUEST"}
}

func Unauthorized() *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Code: "UNAUTHORIZED"}
}

func NotFound() *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Code: "NOT_FOUND"}
}

func InternalServerError() *HTTPError {
	return &HTTPError{Status: http.StatusInternalServerError, Code: "INTERNAL_SERVER_ERROR"}
}

func BadGateway() *HTTPError {
	return &HTTPError{Status: http.StatusBadGateway, Code: "BAD_GATEWAY"}
}
