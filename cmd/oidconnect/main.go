package main

import (
	"os"
	"time"

	"github.com/shivanshkc/oidconnect/internal/config"
	"github.com/shivanshkc/oidconnect/internal/database"
	"github.com/shivanshkc/oidconnect/internal/handler"
	"github.com/shivanshkc/oidconnect/internal/http"
	"github.com/shivanshkc/oidconnect/internal/middleware"
	"github.com/shivanshkc/oidconnect/internal/repository"
	"github.com/shivanshkc/oidconnect/internal/session"
	"github.com/shivanshkc/oidconnect/pkg/logger"
	"github.com/shivanshkc/oidconnect/pkg/oidc"
)

// sessionTTL is how long an idle session survives. It has to outlive the
// user's round trip to the provider's login page.
const sessionTTL = 30 * time.Minute

func main() {
	// Initialize basic dependencies.
	conf := config.Load()
	logger.Init(os.Stdout, conf.Logger.Level, conf.Logger.Pretty)

	// Database for persisting authenticated users.
	db, err := database.Connect(conf)
	if err != nil {
		panic(err)
	}
	repo := repository.NewRepository(db)

	// The OIDC core: transport, client and flow.
	transport, err := oidc.NewHTTPTransport(conf.OIDC.ProxyHost, conf.OIDC.ProxyPort)
	if err != nil {
		panic(err)
	}

	client := oidc.NewClient(oidc.Config{
		ClientID:              conf.OIDC.ClientID,
		ClientSecret:          conf.OIDC.ClientSecret,
		ProviderBaseURL:       conf.OIDC.ProviderBaseURL,
		Scopes:                conf.OIDC.Scopes,
		CallbackURL:           conf.OIDC.CallbackURL,
		PostLogoutRedirectURL: conf.OIDC.PostLogoutRedirectURL,
	}, transport)

	flow := oidc.NewFlow(client, repository.NewSink(repo), conf.OIDC.DefaultRoles)

	// Session manager backs the per-user state/nonce store.
	sessions := session.NewManager(sessionTTL, conf.Application.BaseURL)

	// Initialize the HTTP server.
	server := &http.Server{
		Config:     conf,
		Middleware: middleware.Middleware{},
		Handler:    handler.NewHandler(conf, sessions, flow),
	}

	// This internally calls ListenAndServe.
	// This is a blocking call and will panic if the server is unable to start.
	server.Start()
}
