package config

import "omdb-search/internal/domain"

// Catalog holds the provider conventions and display fallbacks used while
// normalizing search rows. It is a plain value: build it once, pass it down.
type Catalog struct {
	// Sentinel is the provider's "field not provided" marker.
	Sentinel string

	TitlePlaceholder       string
	DescriptionPlaceholder string

	// DefaultImages maps a category to the poster used when the row has none.
	DefaultImages map[domain.Category]string
	// FallbackImage covers categories missing from DefaultImages.
	FallbackImage string

	IMDbBaseURL string
}

const (
	posterSeries  = "https://cdn.pixabay.com/photo/2020/01/23/17/54/popcorn-4788367__340.png"
	posterMovie   = "https://cdn.pixabay.com/photo/2016/03/31/18/36/cinema-1294496__340.png"
	posterEpisode = "https://cdn.pixabay.com/photo/2016/01/02/16/39/darth-vader-1118454__480.png"
)

func DefaultCatalog() Catalog {
	return Catalog{
		Sentinel:               "N/A",
		TitlePlaceholder:       "No Title",
		DescriptionPlaceholder: "No Description",
		DefaultImages: map[domain.Category]string{
			domain.CategoryMovie:   posterMovie,
			domain.CategorySeries:  posterSeries,
			domain.CategoryEpisode: posterEpisode,
		},
		FallbackImage: posterMovie,
		IMDbBaseURL:   "https://imdb.com/title",
	}
}

// Catalog returns the default catalog with the configured IMDb base URL.
func (c Config) Catalog() Catalog {
	cat := DefaultCatalog()
	if c.IMDbBaseURL != "" {
		cat.IMDbBaseURL = c.IMDbBaseURL
	}
	return cat
}
