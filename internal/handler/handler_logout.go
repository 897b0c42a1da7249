package handler

import (
	"log/slog"
	"net/http"

	"github.com/shivanshkc/oidconnect/internal/utils/errutils"
	"github.com/shivanshkc/oidconnect/internal/utils/httputils"
)

// Logout redirects the caller to the provider's logout page. The session is
// cleared in the process, so any pending login attempt dies with it.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.sessions.Of(w, r)

	logoutURL, err := h.flow.LogoutURL(sess)
	if err != nil {
		slog.ErrorContext(ctx, "error in LogoutURL call", "error", err)
		httputils.WriteErr(w, errutils.InternalServerError())
		return
	}

	headers := map[string]string{
		"Location":                logoutURL,
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "frame-ancestors 'none'",
	}

	httputils.Write(w, http.StatusFound, headers, nil)
}
