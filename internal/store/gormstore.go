package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/domain"
)

const (
	snapshotRowID     = 1
	maxUpdateAttempts = 3
)

type snapshotRow struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Version   int64     `gorm:"column:version"`
	Data      []byte    `gorm:"column:data"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRow) TableName() string { return "snapshots" }

// GormStore persists the document as one versioned row. Update locks the
// row for the duration of the transaction and additionally guards the
// write with a version compare-and-swap, retrying a bounded number of
// times on conflict.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	raw, err := json.Marshal(&domain.Document{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	seed := snapshotRow{ID: snapshotRowID, Version: 1, Data: raw, UpdatedAt: time.Now().UTC()}
	tx := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed)
	if tx.Error != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, tx.Error)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) View(ctx context.Context, fn func(doc *domain.Document) error) error {
	var row snapshotRow
	tx := s.db.WithContext(ctx).First(&row, snapshotRowID)
	if tx.Error != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, tx.Error)
	}
	doc, err := decodeDocument(row.Data)
	if err != nil {
		return err
	}
	return fn(doc)
}

func (s *GormStore) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	var lastErr error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var row snapshotRow
			if res := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&row, snapshotRowID); res.Error != nil {
				return fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
			}

			doc, err := decodeDocument(row.Data)
			if err != nil {
				return err
			}
			if err := fn(doc); err != nil {
				return err
			}

			raw, err := json.Marshal(doc)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUnavailable, err)
			}

			res := tx.Model(&snapshotRow{}).
				Where("id = ? AND version = ?", snapshotRowID, row.Version).
				Updates(map[string]any{
					"version":    row.Version + 1,
					"data":       raw,
					"updated_at": time.Now().UTC(),
				})
			if res.Error != nil {
				return fmt.Errorf("%w: %v", ErrUnavailable, res.Error)
			}
			if res.RowsAffected == 0 {
				return errVersionConflict
			}
			return nil
		})
		if err == errVersionConflict {
			lastErr = err
			continue
		}
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

var errVersionConflict = fmt.Errorf("snapshot version conflict")

func decodeDocument(raw []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &doc, nil
}
