// Package store persists the per-user JSON documents (transaction list,
// budget limits, emergency fund, settings) as single rows, one per user per
// kind. There is no cross-document transactionality: each Set overwrites one
// document and the last write wins.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charlesmagnus93/epargnePro/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// Get loads the document of the given kind into out. It returns false when
// the user has no such document yet; callers fall back to defaults.
func (s *Store) Get(userID uint, kind string, out any) (bool, error) {
	var doc models.Document
	err := s.DB.Where("user_id = ? AND kind = ?", userID, kind).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s document: %w", kind, err)
	}
	if err := json.Unmarshal([]byte(doc.Data), out); err != nil {
		return false, fmt.Errorf("decode %s document: %w", kind, err)
	}
	return true, nil
}

// Set overwrites the document of the given kind with the JSON encoding of v,
// creating the row on first write.
func (s *Store) Set(userID uint, kind string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", kind, err)
	}

	doc := models.Document{
		UserID: userID,
		Kind:   kind,
		Data:   string(data),
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save %s document: %w", kind, err)
	}
	return nil
}

// DeleteAll removes every document belonging to the user.
func (s *Store) DeleteAll(userID uint) error {
	if err := s.DB.Where("user_id = ?", userID).Delete(&models.Document{}).Error; err != nil {
		return fmt.Errorf("delete documents: %w", err)
	}
	return nil
}
