package catalog

// MovieSummary is one entry of the discover listing.
type MovieSummary struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// DiscoverResponse mirrors /discover/movie. Only results are consumed.
type DiscoverResponse struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// Genre labels a movie detail.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetail mirrors /movie/{id}.
type MovieDetail struct {
	ID            int64   `json:"id"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	BackdropPath  string  `json:"backdrop_path"`
	Title         string  `json:"title"`
	Tagline       string  `json:"tagline"`
	ReleaseDate   string  `json:"release_date"`
	Runtime       int     `json:"runtime"`
	VoteAverage   float64 `json:"vote_average"`
	Genres        []Genre `json:"genres"`
	Homepage      string  `json:"homepage"`
}

// Clone returns a copy that shares no slices with d.
func (d *MovieDetail) Clone() *MovieDetail {
	if d == nil {
		return nil
	}
	dup := *d
	if len(d.Genres) > 0 {
		dup.Genres = make([]Genre, len(d.Genres))
		copy(dup.Genres, d.Genres)
	}
	return &dup
}

// GenreNames returns the genre labels in payload order.
func (d MovieDetail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	return names
}

// errorPayload is the body the catalog returns alongside non-2xx statuses.
type errorPayload struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
