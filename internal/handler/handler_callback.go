package handler

import (
	"log/slog"
	"net/http"

	"github.com/shivanshkc/oidconnect/internal/utils/errutils"
	"github.com/shivanshkc/oidconnect/internal/utils/httputils"
	"github.com/shivanshkc/oidconnect/pkg/oidc"
)

// Callback handles the provider's OIDC callback: state verification, code
// exchange (with nonce and signature checks) and the userinfo fetch all run
// inside the flow service. On success the validated user-info mapping is
// served as JSON.
//
// Security failures answer with a deliberately generic 401; the specific
// failed check is only ever logged. A failed attempt cannot be resumed, the
// user has to restart from the login endpoint.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := h.sessions.Of(w, r)

	info, err := h.flow.HandleCallback(ctx, sess, r.URL.Query())
	if err == nil {
		httputils.Write(w, http.StatusOK, nil, info)
		return
	}

	slog.ErrorContext(ctx, "error in HandleCallback call", "error", err)

	switch {
	case oidc.IsSecurityError(err):
		httputils.WriteErr(w, errutils.Unauthorized())
	case oidc.IsProviderError(err):
		httputils.WriteErr(w, errutils.BadGateway().WithReasonErr(err))
	default:
		httputils.WriteErr(w, errutils.InternalServerError())
	}
}
