package reviews

import (
	"context"
	"errors"
	"testing"
	"time"

	"videogamehub/backend/internal/catalog"
	"videogamehub/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// fakeResolver resolves only the ids it was given names for.
type fakeResolver struct {
	names map[int64]string
}

func (f *fakeResolver) Details(ctx context.Context, id int64) (catalog.GameRecord, error) {
	name, ok := f.names[id]
	if !ok {
		return catalog.GameRecord{}, &catalog.NotFoundError{ID: id}
	}
	return catalog.GameRecord{ID: id, Name: name}, nil
}

func newTestStore(t *testing.T, resolver GameResolver) (*Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if resolver == nil {
		resolver = &fakeResolver{}
	}
	return NewStore(db, resolver, zerolog.Nop()), db
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	store, db := newTestStore(t, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := store.Submit(context.Background(), 100, 1, "a@x.com", text)
		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Errorf("Submit(%q) err = %v, want *ValidationError", text, err)
		}
	}

	var count int64
	db.Model(&models.Review{}).Count(&count)
	if count != 0 {
		t.Errorf("%d reviews appended despite validation failures", count)
	}
}

func TestSubmitRejectsUnknownAuthor(t *testing.T) {
	store, _ := newTestStore(t, nil)

	_, err := store.Submit(context.Background(), 100, 0, "", "great game")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

func TestSubmitAppendsRecord(t *testing.T) {
	store, _ := newTestStore(t, nil)

	review, err := store.Submit(context.Background(), 42, 1, "a@x.com", "loved it")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if review.ID == 0 {
		t.Error("review was not persisted")
	}
	if review.CreatedAt.IsZero() {
		t.Error("timestamp not assigned")
	}
}

func TestForGameSortsNewestFirst(t *testing.T) {
	store, db := newTestStore(t, nil)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	older := []models.Review{
		{GameID: 7, UserID: 1, AuthorHandle: "a@x.com", Text: "first", Model: gorm.Model{CreatedAt: base}},
		{GameID: 7, UserID: 2, AuthorHandle: "b@x.com", Text: "second", Model: gorm.Model{CreatedAt: base.Add(time.Minute)}},
		{GameID: 8, UserID: 1, AuthorHandle: "a@x.com", Text: "other game", Model: gorm.Model{CreatedAt: base.Add(2 * time.Minute)}},
	}
	for i := range older {
		if err := db.Create(&older[i]).Error; err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}

	if _, err := store.Submit(ctx, 7, 3, "c@x.com", "newest"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, err := store.ForGame(ctx, 7)
	if err != nil {
		t.Fatalf("ForGame: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d reviews, want 3", len(got))
	}
	if got[0].Text != "newest" {
		t.Errorf("first review = %q, want the newly submitted one", got[0].Text)
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Errorf("reviews not sorted descending at index %d", i)
		}
	}
}

func TestByAuthorResolvesGameNames(t *testing.T) {
	resolver := &fakeResolver{names: map[int64]string{7: "Known Game"}}
	store, _ := newTestStore(t, resolver)
	ctx := context.Background()

	if _, err := store.Submit(ctx, 7, 1, "a@x.com", "resolvable"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Submit(ctx, 999, 1, "a@x.com", "vanished upstream"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Submit(ctx, 7, 2, "b@x.com", "someone else"); err != nil {
		t.Fatal(err)
	}

	authored, err := store.ByAuthor(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("ByAuthor: %v", err)
	}
	if len(authored) != 2 {
		t.Fatalf("got %d reviews, want 2", len(authored))
	}

	names := map[int64]string{}
	for _, a := range authored {
		names[a.Review.GameID] = a.GameName
	}
	if names[7] != "Known Game" {
		t.Errorf("resolved name = %q, want Known Game", names[7])
	}
	if names[999] != unknownGameName {
		t.Errorf("placeholder name = %q, want %q", names[999], unknownGameName)
	}
}
