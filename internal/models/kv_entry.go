package models

import "time"

// KVEntry is one key/value row of the local snapshot table. The
// transaction list is persisted wholesale under a single key.
type KVEntry struct {
	Key       string    `gorm:"column:entry_key;primaryKey"`
	Value     []byte    `gorm:"column:payload;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName pins the table created by the SQL migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}
