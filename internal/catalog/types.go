package catalog

// GameRecord is the normalized game shape served to the rest of the
// application. Records are values; two fetches of the same id may differ if
// the upstream source changed.
//
// List queries (Search, TopRated, Trending) populate only the summary
// fields. Description is long-form text and is populated exclusively by
// Details; the short slug always lives in Slug.
type GameRecord struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	Description     string  `json:"description,omitempty"`
	Trailer         string  `json:"trailer,omitempty"`
	Rating          float64 `json:"rating"`
	Playtime        int     `json:"playtime"`
	Released        string  `json:"released,omitempty"`
	RatingsCount    int     `json:"ratings_count,omitempty"`
}

// Raw upstream payloads. Only the fields we consume are declared; schema
// drift on anything else is ignored.

type gameListResponse struct {
	Results []gameSummary `json:"results"`
}

type gameSummary struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	Rating          float64 `json:"rating"`
	Playtime        int     `json:"playtime"`
	Released        string  `json:"released"`
	RatingsCount    int     `json:"ratings_count"`
}

func (g gameSummary) record() GameRecord {
	return GameRecord{
		ID:              g.ID,
		Slug:            g.Slug,
		Name:            g.Name,
		BackgroundImage: g.BackgroundImage,
		Rating:          g.Rating,
		Playtime:        g.Playtime,
		Released:        g.Released,
		RatingsCount:    g.RatingsCount,
	}
}

type gameDetailResponse struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	DescriptionRaw  string  `json:"description_raw"`
	Rating          float64 `json:"rating"`
	Playtime        int     `json:"playtime"`
	Released        string  `json:"released"`
	RatingsCount    int     `json:"ratings_count"`
}

type movieListResponse struct {
	Results []movie `json:"results"`
}

type movie struct {
	ID   int64             `json:"id"`
	Name string            `json:"name"`
	Data map[string]string `json:"data"`
}

// preview returns the 480p asset URL, or "" when the movie carries none.
// A missing asset is "no trailer", never an error.
func (m movieListResponse) preview() string {
	if len(m.Results) == 0 {
		return ""
	}
	return m.Results[0].Data["480"]
}
