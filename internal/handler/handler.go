package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shivanshkc/oidconnect/internal/config"
	"github.com/shivanshkc/oidconnect/internal/session"
	"github.com/shivanshkc/oidconnect/internal/utils/errutils"
	"github.com/shivanshkc/oidconnect/internal/utils/httputils"
	"github.com/shivanshkc/oidconnect/pkg/oidc"
)

// Flow is the part of the OIDC flow service the handlers invoke.
// It is implemented by oidc.Flow.
type Flow interface {
	// AuthorizationURL starts a login attempt for the given session.
	AuthorizationURL(store oidc.Store) (string, error)

	// HandleCallback processes the provider's callback parameters.
	HandleCallback(ctx context.Context, store oidc.Store, params url.Values) (map[string]any, error)

	// LogoutURL builds the provider logout URL and clears the session.
	LogoutURL(store oidc.Store) (string, error)
}

// Handler encapsulates all REST handlers.
type Handler struct {
	config   config.Config
	sessions *session.Manager
	flow     Flow
}

// NewHandler creates a new Handler instance.
func NewHandler(config config.Config, sessions *session.Manager, flow Flow) *Handler {
	return &Handler{config: config, sessions: sessions, flow: flow}
}

// NotFound handler can be used to serve any unrecognized routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	httputils.WriteErr(w, errutils.NotFound())
}

// Health returns 200 if everything is running fine.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	info := map[string]string{"name": h.config.Application.Name}
	httputils.Write(w, http.StatusOK, nil, info)
}
