package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eqsense/internal/models/db_models"
	"eqsense/pkg/utils"
)

// PostgresSessionStore backs sessions with a single jsonb-state table.
// Rows past their expiry are treated as gone and reaped opportunistically.
type PostgresSessionStore struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewPostgresSessionStore(db *gorm.DB, ttl time.Duration) *PostgresSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &PostgresSessionStore{db: db, ttl: ttl}
}

func (s *PostgresSessionStore) Save(ctx context.Context, session *db_models.AssessmentSession) error {
	session.ExpiresAt = time.Now().Add(s.ttl)

	state, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}

	record := db_models.AssessmentSessionRecord{
		ID:        session.ID,
		State:     state,
		ExpiresAt: session.ExpiresAt,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "expires_at", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return nil
}

func (s *PostgresSessionStore) Get(ctx context.Context, id string) (*db_models.AssessmentSession, error) {
	var record db_models.AssessmentSessionRecord
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now()).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}

	var session db_models.AssessmentSession
	if err := json.Unmarshal(record.State, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return &session, nil
}

func (s *PostgresSessionStore) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Delete(&db_models.AssessmentSessionRecord{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return nil
}

// ReapExpired removes sessions past their expiry. Called periodically from
// the store's lifecycle hook.
func (s *PostgresSessionStore) ReapExpired(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Delete(&db_models.AssessmentSessionRecord{}, "expires_at <= ?", time.Now()).Error
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return nil
}
