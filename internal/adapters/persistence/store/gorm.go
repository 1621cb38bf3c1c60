package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// documentRow is the single table backing the mysql document store: one
// row per record, JSON body, composite key (collection, record id).
type documentRow struct {
	Collection string    `gorm:"primaryKey;size:64"`
	RecordID   string    `gorm:"primaryKey;size:64"`
	Body       string    `gorm:"type:json"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (documentRow) TableName() string {
	return "documents"
}

// GormStore implements the document tree over a relational documents
// table. It exists for deployments without a redis; the repositories are
// oblivious to which backend they run on.
type GormStore struct {
	db *gorm.DB
}

// ConnectMySQL opens the mysql connection for a GormStore and migrates
// the documents table.
func ConnectMySQL(dsn string, verbose bool) (*GormStore, error) {
	logMode := gormlogger.Default.LogMode(gormlogger.Error)
	if verbose {
		logMode = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 logMode,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}

	log.Println("✅ Document store connected (mysql)")
	return &GormStore{db: db}, nil
}

// NewGormStore wraps an existing gorm handle (used by tests).
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Put writes the complete record, overwriting whatever was there.
func (s *GormStore) Put(ctx context.Context, collection, id string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding record %s/%s: %w", collection, id, err)
	}
	row := documentRow{Collection: collection, RecordID: id, Body: string(data)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
}

// Get returns the record, or (nil, nil) if it does not exist.
func (s *GormStore) Get(ctx context.Context, collection, id string) (Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND record_id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
		return nil, fmt.Errorf("decoding record %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Patch shallow-merges partial into the stored record.
func (s *GormStore) Patch(ctx context.Context, collection, id string, partial Document) error {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = Document{}
	}
	for k, v := range partial {
		doc[k] = v
	}
	return s.Put(ctx, collection, id, doc)
}

// Ping checks the connection.
func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Remove deletes the record. Removing an absent record is not an error.
func (s *GormStore) Remove(ctx context.Context, collection, id string) error {
	return s.db.WithContext(ctx).
		Where("collection = ? AND record_id = ?", collection, id).
		Delete(&documentRow{}).Error
}

// List returns the collection's children map, empty if the collection is
// absent. Rows that fail to decode are skipped.
func (s *GormStore) List(ctx context.Context, collection string) (map[string]Document, error) {
	var rows []documentRow
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]Document, len(rows))
	for _, row := range rows {
		var doc Document
		if err := json.Unmarshal([]byte(row.Body), &doc); err != nil {
			continue
		}
		out[row.RecordID] = doc
	}
	return out, nil
}
