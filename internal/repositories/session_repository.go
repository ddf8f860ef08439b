package repositories

import (
	"context"
	"time"

	"eqsense/internal/models/db_models"
)

const DefaultSessionTTL = 30 * time.Minute

// SessionRepositoryInterface is the store for in-flight assessment sessions.
// Sessions are working state with a TTL, not a history of results: stores
// drop them on expiry and Delete removes them eagerly.
type SessionRepositoryInterface interface {
	Save(ctx context.Context, session *db_models.AssessmentSession) error
	Get(ctx context.Context, id string) (*db_models.AssessmentSession, error)
	Delete(ctx context.Context, id string) error
}
