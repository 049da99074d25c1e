package lists

import (
	"context"

	"videogamehub/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDocumentStore persists list documents as one row per membership,
// aggregated into a Document on fetch. The composite primary key on
// list_entries provides the set-union/set-difference semantics Add and
// Remove promise.
type GormDocumentStore struct {
	db *gorm.DB
}

func NewGormDocumentStore(db *gorm.DB) *GormDocumentStore {
	return &GormDocumentStore{db: db}
}

func (s *GormDocumentStore) Fetch(ctx context.Context, userID uint) (Document, error) {
	var entries []models.ListEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("game_id").
		Find(&entries).Error
	if err != nil {
		return Document{}, err
	}

	var doc Document
	for _, e := range entries {
		switch Label(e.Label) {
		case LabelPlayed:
			doc.Played = append(doc.Played, e.GameID)
		case LabelQueued:
			doc.Queued = append(doc.Queued, e.GameID)
		case LabelWishlist:
			doc.Wishlist = append(doc.Wishlist, e.GameID)
		}
	}
	return doc, nil
}

func (s *GormDocumentStore) Add(ctx context.Context, userID uint, label Label, gameID int64) error {
	entry := models.ListEntry{
		UserID: userID,
		Label:  string(label),
		GameID: gameID,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry).Error
}

func (s *GormDocumentStore) Remove(ctx context.Context, userID uint, label Label, gameID int64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND label = ? AND game_id = ?", userID, string(label), gameID).
		Delete(&models.ListEntry{}).Error
}
