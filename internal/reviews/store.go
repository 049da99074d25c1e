// Package reviews appends and queries free-text game reviews. Records are
// immutable once written; there is no edit or delete path.
package reviews

import (
	"context"
	"fmt"
	"strings"

	"videogamehub/backend/internal/catalog"
	"videogamehub/backend/internal/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ValidationError rejects a review before anything is written.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid review: %s", e.Reason)
}

// GameResolver resolves a game id to its catalog record. Satisfied by
// *catalog.Client.
type GameResolver interface {
	Details(ctx context.Context, id int64) (catalog.GameRecord, error)
}

// unknownGameName stands in when a game id can no longer be resolved
// upstream; resolution failures are never surfaced from ByAuthor.
const unknownGameName = "Unknown game"

type Store struct {
	db       *gorm.DB
	resolver GameResolver
	logger   zerolog.Logger
}

func NewStore(db *gorm.DB, resolver GameResolver, logger zerolog.Logger) *Store {
	return &Store{
		db:       db,
		resolver: resolver,
		logger:   logger.With().Str("component", "reviews").Logger(),
	}
}

// Submit appends one review. The text must be non-empty after trimming and
// the author must be known, otherwise a ValidationError is returned and
// nothing is written. The timestamp is assigned by the database layer.
func (s *Store) Submit(ctx context.Context, gameID int64, userID uint, authorHandle, text string) (models.Review, error) {
	if strings.TrimSpace(text) == "" {
		return models.Review{}, &ValidationError{Reason: "text must not be empty"}
	}
	if authorHandle == "" {
		return models.Review{}, &ValidationError{Reason: "author is unknown"}
	}

	review := models.Review{
		GameID:       gameID,
		UserID:       userID,
		AuthorHandle: authorHandle,
		Text:         text,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return models.Review{}, err
	}
	return review, nil
}

// ForGame returns every review for the game, newest first, without
// pagination.
func (s *Store) ForGame(ctx context.Context, gameID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// AuthoredReview is a review joined with the display name of its game.
type AuthoredReview struct {
	Review   models.Review
	GameName string
}

// ByAuthor returns the author's reviews, newest first, each with the game
// name resolved through the catalog. Resolution is best effort: a failed
// lookup yields a placeholder name, not an error.
func (s *Store) ByAuthor(ctx context.Context, authorHandle string) ([]AuthoredReview, error) {
	var reviews []models.Review
	err := s.db.WithContext(ctx).
		Where("author_handle = ?", authorHandle).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	authored := make([]AuthoredReview, len(reviews))
	for i, review := range reviews {
		name := unknownGameName
		if record, err := s.resolver.Details(ctx, review.GameID); err == nil {
			name = record.Name
		} else {
			s.logger.Debug().Err(err).Int64("game_id", review.GameID).Msg("game name lookup failed")
		}
		authored[i] = AuthoredReview{Review: review, GameName: name}
	}
	return authored, nil
}
