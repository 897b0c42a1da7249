package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockRepository is a mock implementation of Repository.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) UpsertUser(ctx context.Context, user User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
