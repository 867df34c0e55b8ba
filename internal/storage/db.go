package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageRecord is the row shape of the database-backed gateway: one record
// per key, value is the JSON document.
type StorageRecord struct {
	Key   string `gorm:"primarykey;type:varchar(64)"`
	Value string `gorm:"type:text;not null"`
}

// DBGateway stores records in a relational database through GORM. Same
// contract as the file gateway, for installs that want the tracker state in
// a shared database instead of a per-device directory.
type DBGateway struct {
	db *gorm.DB
}

// NewDBGateway wraps an open GORM handle and migrates the records table.
func NewDBGateway(db *gorm.DB) (*DBGateway, error) {
	if err := db.AutoMigrate(&StorageRecord{}); err != nil {
		return nil, fmt.Errorf("db gateway: migrate: %w", err)
	}
	return &DBGateway{db: db}, nil
}

// OpenMySQL opens a MySQL-backed gateway from a DSN.
func OpenMySQL(dsn string) (*DBGateway, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db gateway: connect to mysql: %w", err)
	}
	return NewDBGateway(db)
}

// OpenPostgres opens a PostgreSQL-backed gateway from a DSN.
func OpenPostgres(dsn string) (*DBGateway, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db gateway: connect to postgres: %w", err)
	}
	return NewDBGateway(db)
}

// Read returns the stored value for key, or ok=false when absent.
func (g *DBGateway) Read(key string) (string, bool, error) {
	var rec StorageRecord
	if err := g.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("db gateway: read %q: %w", key, err)
	}
	return rec.Value, true, nil
}

// Write replaces the value for key (insert or update).
func (g *DBGateway) Write(key, value string) error {
	rec := StorageRecord{Key: key, Value: value}
	err := g.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("db gateway: write %q: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key. Removing a missing key is a no-op.
func (g *DBGateway) Remove(key string) error {
	if err := g.db.Delete(&StorageRecord{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("db gateway: remove %q: %w", key, err)
	}
	return nil
}
