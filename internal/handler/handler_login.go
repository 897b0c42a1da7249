package handler

import (
	"log/slog"
	"net/http"

	"github.com/shivanshkc/oidconnect/internal/utils/errutils"
	"github.com/shivanshkc/oidconnect/internal/utils/httputils"
)

// Login starts the OIDC flow by redirecting the caller to the provider's
// authentication page. The pending state and nonce are seeded into the
// caller's session before the redirect is issued.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The session must exist (and its cookie must be set) before the user
	// leaves for the provider, or the callback has nothing to verify against.
	sess := h.sessions.Of(w, r)

	authURL, err := h.flow.AuthorizationURL(sess)
	if err != nil {
		slog.ErrorContext(ctx, "error in AuthorizationURL call", "error", err)
		httputils.WriteErr(w, errutils.InternalServerError())
		return
	}

	// Response headers.
	headers := map[string]string{
		"Location": authURL,
		// The following headers make sure that the browser is not allowed to render the page
		// in a <frame>, <iframe>, <embed> or <object> tag.
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "frame-ancestors 'none'",
	}

	// Redirect.
	httputils.Write(w, http.StatusFound, headers, nil)
}
