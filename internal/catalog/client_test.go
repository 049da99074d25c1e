package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"videogamehub/backend/internal/config"

	"github.com/rs/zerolog"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	cfg := &config.Config{
		RawgAPIKey:  "test-key",
		RawgBaseURL: ts.URL,
	}
	return NewClient(cfg, zerolog.Nop())
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func TestSearchReturnsSummaries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search"); got != "zelda" {
			t.Errorf("search param = %q, want zelda", got)
		}
		if r.URL.Query().Get("key") == "" {
			t.Error("missing api key param")
		}
		writeJSON(w, `{"results":[
			{"id":1,"slug":"zelda-botw","name":"Zelda BOTW","background_image":"http://img/1.jpg","rating":4.5,"playtime":80},
			{"id":2,"slug":"zelda-totk","name":"Zelda TOTK","background_image":"http://img/2.jpg","rating":4.7,"playtime":90}
		]}`)
	})
	client := newTestClient(t, mux)

	records, err := client.Search(context.Background(), "zelda")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	first := records[0]
	if first.ID != 1 || first.Name != "Zelda BOTW" || first.BackgroundImage != "http://img/1.jpg" {
		t.Errorf("unexpected first record: %+v", first)
	}
	// Search never populates the long-form description.
	if first.Description != "" {
		t.Errorf("search record has description %q", first.Description)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	client := newTestClient(t, mux)

	_, err := client.Search(context.Background(), "x")
	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want *UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", upstream.StatusCode)
	}
}

func TestTopRatedTruncatesToLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ordering"); got != "-rating" {
			t.Errorf("ordering = %q, want -rating", got)
		}
		// Upstream may ignore page_size and return more.
		writeJSON(w, `{"results":[{"id":1,"name":"a"},{"id":2,"name":"b"},{"id":3,"name":"c"}]}`)
	})
	client := newTestClient(t, mux)

	records, err := client.TopRated(context.Background(), 2)
	if err != nil {
		t.Fatalf("TopRated: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

// trendingHandler serves a three-game batch where only selected ids carry a
// 480p trailer asset and one id fails its movies lookup outright.
func trendingHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"results":[
			{"id":10,"name":"first"},
			{"id":20,"name":"no-trailer"},
			{"id":30,"name":"broken"},
			{"id":40,"name":"last"}
		]}`)
	})
	mux.HandleFunc("/games/10/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"results":[{"id":1,"name":"t","data":{"480":"http://cdn/10.mp4","max":"http://cdn/10-max.mp4"}}]}`)
	})
	mux.HandleFunc("/games/20/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"results":[]}`)
	})
	mux.HandleFunc("/games/30/movies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/games/40/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"results":[{"id":2,"name":"t","data":{"480":"http://cdn/40.mp4"}}]}`)
	})
	return mux
}

func TestTrendingWithTrailerFiltersAndPreservesOrder(t *testing.T) {
	client := newTestClient(t, trendingHandler())

	records, err := client.TrendingWithTrailer(context.Background(), 5)
	if err != nil {
		t.Fatalf("TrendingWithTrailer: %v", err)
	}
	// Only 10 and 40 carry trailers; fewer than max is fine, never padded.
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2: %+v", len(records), records)
	}
	if records[0].ID != 10 || records[1].ID != 40 {
		t.Errorf("batch order not preserved: %d, %d", records[0].ID, records[1].ID)
	}
	for _, rec := range records {
		if rec.Trailer == "" {
			t.Errorf("record %d has no trailer", rec.ID)
		}
	}
}

func TestTrendingWithTrailerCapsResults(t *testing.T) {
	client := newTestClient(t, trendingHandler())

	records, err := client.TrendingWithTrailer(context.Background(), 1)
	if err != nil {
		t.Fatalf("TrendingWithTrailer: %v", err)
	}
	if len(records) != 1 || records[0].ID != 10 {
		t.Errorf("got %+v, want just game 10", records)
	}
}

func TestTrendingCustomPredicate(t *testing.T) {
	client := newTestClient(t, trendingHandler())

	// The trailer filter is the caller's choice, not the client's.
	records, err := client.Trending(context.Background(), 5, func(GameRecord) bool { return true })
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	// Game 30 is still dropped: its trailer lookup failed.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3: %+v", len(records), records)
	}
	if records[1].ID != 20 || records[1].Trailer != "" {
		t.Errorf("trailer-less game not kept by permissive predicate: %+v", records[1])
	}
}

func TestDetailsJoinsMetadataAndTrailer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games/77", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":77,"slug":"elden-ring","name":"Elden Ring","background_image":"http://img/77.jpg",
			"description_raw":"A vast world full of excitement.","rating":4.8,"playtime":120,
			"released":"2022-02-25","ratings_count":9001}`)
	})
	mux.HandleFunc("/games/77/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"results":[{"id":3,"name":"t","data":{"480":"http://cdn/77.mp4"}}]}`)
	})
	client := newTestClient(t, mux)

	record, err := client.Details(context.Background(), 77)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if record.Description != "A vast world full of excitement." {
		t.Errorf("description = %q", record.Description)
	}
	if record.Trailer != "http://cdn/77.mp4" {
		t.Errorf("trailer = %q", record.Trailer)
	}
	if record.Released != "2022-02-25" || record.RatingsCount != 9001 {
		t.Errorf("detail fields not populated: %+v", record)
	}
}

func TestDetailsNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(t, mux)

	_, err := client.Details(context.Background(), 12345)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want *NotFoundError", err)
	}
	if notFound.ID != 12345 {
		t.Errorf("not-found id = %d", notFound.ID)
	}
}

func TestDetailsTrailerFailureIsTolerated(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/games/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"id":5,"name":"quiet game","rating":3.2,"playtime":10}`)
	})
	mux.HandleFunc("/games/5/movies", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client := newTestClient(t, mux)

	record, err := client.Details(context.Background(), 5)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	if record.Trailer != "" {
		t.Errorf("trailer = %q, want empty", record.Trailer)
	}
	if record.Name != "quiet game" {
		t.Errorf("name = %q", record.Name)
	}
}
