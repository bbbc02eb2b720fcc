package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ildanga/internal/models/db_models"
	"ildanga/pkg/utils"
)

// TripRepository persists the whole TripSession as one JSON row under a fixed
// storage key.
type TripRepository interface {
	Save(ctx context.Context, key string, session *db_models.TripSession) error

	// Load returns the stored session and its last write time. A missing or
	// unreadable record yields (nil, zero, nil) so the caller starts empty.
	Load(ctx context.Context, key string) (*db_models.TripSession, time.Time, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Save(ctx context.Context, key string, session *db_models.TripSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	record := db_models.TripSessionRecord{
		StorageKey: key,
		Payload:    string(payload),
		UpdatedAt:  utils.NowKST(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "storage_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *tripRepository) Load(ctx context.Context, key string) (*db_models.TripSession, time.Time, error) {
	var record db_models.TripSessionRecord
	err := r.db.WithContext(ctx).
		Where("storage_key = ?", key).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, err
	}

	var session db_models.TripSession
	if err := json.Unmarshal([]byte(record.Payload), &session); err != nil {
		// No migration scheme: an unreadable record is discarded.
		log.Printf("Discarding unreadable trip session record: %v", err)
		return nil, time.Time{}, nil
	}
	return &session, record.UpdatedAt, nil
}
