// Package store persists user profiles.
//
// Error contract: Get returns sentinel.ErrNotFound when no profile exists for
// the user; infrastructure failures come back wrapped.
package store

import (
	"context"

	"platerra/internal/profile/models"
	id "platerra/pkg/domain"
)

type Store interface {
	Get(ctx context.Context, userID id.UserID) (*models.Profile, error)
	Upsert(ctx context.Context, profile *models.Profile) error
}
