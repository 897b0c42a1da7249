package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// User represents a single authenticated user in the database.
type User struct {
	ID         int    `json:"id"`
	Subject    string `json:"subject" mapstructure:"sub"`
	Email      string `json:"email" mapstructure:"email"`
	Name       string `json:"name" mapstructure:"name"`
	GivenName  string `json:"given_name" mapstructure:"given_name"`
	FamilyName string `json:"family_name" mapstructure:"family_name"`
	Roles      string `json:"roles" mapstructure:"-"`
	CreatedAt  string `json:"created_at" mapstructure:"-"`
	UpdatedAt  string `json:"updated_at" mapstructure:"-"`
}

// Repository encapsulates all operations available on the database.
type Repository interface {
	UpsertUser(ctx context.Context, user User) error
}

// repository implements Repository.
type repository struct {
	database *sql.DB
}

// NewRepository returns a new implementation of Repository.
func NewRepository(database *sql.DB) Repository {
	return &repository{database: database}
}

func (r *repository) UpsertUser(ctx context.Context, user User) error {
	// Form and execute query.
	query, args := upsertUserQuery(user)
	result, err := r.database.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error in query execution: %w", err)
	}

	// Parameters for logging.
	af, _ := result.RowsAffected()

	slog.InfoContext(ctx, "user upserted successfully", "subject", user.Subject, "rows-affected", af)
	return nil
}
