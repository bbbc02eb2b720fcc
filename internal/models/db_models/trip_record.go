package db_models

import "time"

// TripSessionRecord is the single persisted row holding the serialized
// TripSession under a fixed storage key. There is no versioning scheme; an
// unreadable payload is treated as an empty session.
type TripSessionRecord struct {
	StorageKey string    `gorm:"primaryKey;column:storage_key"`
	Payload    string    `gorm:"column:payload;type:text"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (TripSessionRecord) TableName() string {
	return "trip_sessions"
}
