package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"platerra/internal/profile/models"
	"platerra/internal/sentinel"
	id "platerra/pkg/domain"
)

// PostgresStore persists profiles in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	query := `
		SELECT user_id, full_name, document_type, document_number, city, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var profile models.Profile
	var uid uuid.UUID
	var docType string
	err := s.db.QueryRowContext(ctx, query, uuid.UUID(userID)).Scan(
		&uid,
		&profile.FullName,
		&docType,
		&profile.DocumentNumber,
		&profile.City,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	profile.UserID = id.UserID(uid)
	profile.DocumentType = id.DocumentType(docType)
	return &profile, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is required")
	}
	query := `
		INSERT INTO profiles (user_id, full_name, document_type, document_number, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    document_type = EXCLUDED.document_type,
		    document_number = EXCLUDED.document_number,
		    city = EXCLUDED.city,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(profile.UserID),
		profile.FullName,
		string(profile.DocumentType),
		profile.DocumentNumber,
		profile.City,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
