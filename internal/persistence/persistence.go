// Package persistence stores the workspace document in a local SQLite
// database. The whole workspace is one JSON document per row, keyed by
// workspace name, so loading and saving stay atomic.
package persistence

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultWorkspaceKey is the row key used when no workspace name is configured.
const DefaultWorkspaceKey = "workspace"

// ErrNoSnapshot is returned by Load when the workspace has never been saved.
var ErrNoSnapshot = errors.New("no saved snapshot")

// SnapshotRecord is one saved workspace document.
type SnapshotRecord struct {
	Key       string `gorm:"primaryKey"`
	Document  string
	UpdatedAt time.Time
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Snapshot database initialized at %s", dbPath)

	return &Repository{db: db}, nil
}

// Load returns the saved document for the given workspace key.
func (r *Repository) Load(key string) ([]byte, error) {
	var record SnapshotRecord
	err := r.db.Where("key = ?", key).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Document), nil
}

// Save upserts the document for the given workspace key.
func (r *Repository) Save(key string, document []byte) error {
	var record SnapshotRecord
	result := r.db.Where("key = ?", key).First(&record)

	if result.Error == gorm.ErrRecordNotFound {
		record = SnapshotRecord{
			Key:       key,
			Document:  string(document),
			UpdatedAt: time.Now(),
		}
		return r.db.Create(&record).Error
	} else if result.Error != nil {
		return result.Error
	}

	record.Document = string(document)
	record.UpdatedAt = time.Now()
	return r.db.Save(&record).Error
}

// Delete removes the saved document for a workspace key. Missing rows are
// not an error.
func (r *Repository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&SnapshotRecord{}).Error
}

// UpdatedAt reports when the workspace was last saved.
func (r *Repository) UpdatedAt(key string) (time.Time, error) {
	var record SnapshotRecord
	err := r.db.Where("key = ?", key).First(&record).Error
	if err == gorm.ErrRecordNotFound {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, err
	}
	return record.UpdatedAt, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
