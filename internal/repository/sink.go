package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/shivanshkc/oidconnect/pkg/oidc"
)

// Sink implements the oidc.Sink interface by persisting every validated
// identity as a user row. This is the host-application side of the flow: once
// a record lands here, the user counts as authenticated.
type Sink struct {
	repo Repository
}

// NewSink returns a Sink around the given repository.
func NewSink(repo Repository) *Sink {
	return &Sink{repo: repo}
}

func (s *Sink) Establish(ctx context.Context, identity oidc.Identity) error {
	// The claims mapping is loosely typed at the boundary; mapstructure picks
	// out the columns this service persists.
	var user User
	if err := mapstructure.Decode(identity.Claims, &user); err != nil {
		return fmt.Errorf("error in mapstructure.Decode call: %w", err)
	}

	if user.Subject == "" {
		return fmt.Errorf("identity claims carry no subject")
	}
	user.Roles = strings.Join(identity.Roles, ",")

	if err := s.repo.UpsertUser(ctx, user); err != nil {
		return fmt.Errorf("error in UpsertUser call: %w", err)
	}

	return nil
}
