package lists

import (
	"context"
	"testing"

	"videogamehub/backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDocumentStore(t *testing.T) *GormDocumentStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.ListEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewGormDocumentStore(db)
}

func TestGormStoreAddIsIdempotent(t *testing.T) {
	store := newTestDocumentStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Add(ctx, 1, LabelWishlist, 42); err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
	}

	doc, err := store.Fetch(ctx, 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(doc.Wishlist) != 1 || doc.Wishlist[0] != 42 {
		t.Errorf("wishlist = %v, want [42]", doc.Wishlist)
	}
}

func TestGormStoreRemoveAbsentIsNoError(t *testing.T) {
	store := newTestDocumentStore(t)

	if err := store.Remove(context.Background(), 1, LabelPlayed, 7); err != nil {
		t.Fatalf("Remove of absent id: %v", err)
	}
}

func TestGormStoreFetchBucketsLabels(t *testing.T) {
	store := newTestDocumentStore(t)
	ctx := context.Background()

	entries := []struct {
		label Label
		id    int64
	}{
		{LabelPlayed, 1}, {LabelPlayed, 2}, {LabelQueued, 3}, {LabelWishlist, 2},
	}
	for _, e := range entries {
		if err := store.Add(ctx, 9, e.label, e.id); err != nil {
			t.Fatalf("Add(%s, %d): %v", e.label, e.id, err)
		}
	}
	// Another user's entries must not leak in.
	if err := store.Add(ctx, 10, LabelPlayed, 100); err != nil {
		t.Fatal(err)
	}

	doc, err := store.Fetch(ctx, 9)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(doc.Played) != 2 || doc.Played[0] != 1 || doc.Played[1] != 2 {
		t.Errorf("played = %v, want [1 2]", doc.Played)
	}
	if len(doc.Queued) != 1 || doc.Queued[0] != 3 {
		t.Errorf("queued = %v, want [3]", doc.Queued)
	}
	if len(doc.Wishlist) != 1 || doc.Wishlist[0] != 2 {
		t.Errorf("wishlist = %v, want [2]", doc.Wishlist)
	}
}

func TestGormStoreFetchMissingUserIsEmpty(t *testing.T) {
	store := newTestDocumentStore(t)

	doc, err := store.Fetch(context.Background(), 404)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(doc.Played)+len(doc.Queued)+len(doc.Wishlist) != 0 {
		t.Errorf("document for unknown user not empty: %+v", doc)
	}
}
