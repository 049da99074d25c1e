package lists

import (
	"context"
	"fmt"
)

// Label names one of the three fixed lists a user can file games under.
// The set is closed; the values double as the persisted field names.
type Label string

const (
	LabelPlayed   Label = "playedGames"
	LabelQueued   Label = "queuedGames"
	LabelWishlist Label = "wishlist"
)

// Labels enumerates all labels in a stable order.
var Labels = []Label{LabelPlayed, LabelQueued, LabelWishlist}

// ParseLabel maps the short route segment (or a persisted field name)
// to a Label.
func ParseLabel(s string) (Label, error) {
	switch s {
	case "played", string(LabelPlayed):
		return LabelPlayed, nil
	case "queued", string(LabelQueued):
		return LabelQueued, nil
	case "wishlist":
		return LabelWishlist, nil
	}
	return "", fmt.Errorf("unknown list label %q", s)
}

// Short returns the route segment form of the label.
func (l Label) Short() string {
	switch l {
	case LabelPlayed:
		return "played"
	case LabelQueued:
		return "queued"
	default:
		return "wishlist"
	}
}

// Document is the remote per-user list document. A user with no document
// yet is represented by three empty slices, never by an error.
type Document struct {
	Played   []int64
	Queued   []int64
	Wishlist []int64
}

// Field returns the slice for the given label.
func (d Document) Field(label Label) []int64 {
	switch label {
	case LabelPlayed:
		return d.Played
	case LabelQueued:
		return d.Queued
	default:
		return d.Wishlist
	}
}

// DocumentStore is the remote source of truth for per-user list documents.
// Add must behave as set union (re-adding an existing id succeeds without
// effect) and Remove as set difference (removing an absent id succeeds).
type DocumentStore interface {
	Fetch(ctx context.Context, userID uint) (Document, error)
	Add(ctx context.Context, userID uint, label Label, gameID int64) error
	Remove(ctx context.Context, userID uint, label Label, gameID int64) error
}
