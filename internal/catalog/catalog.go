// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package catalog implements the read-only client for the movie-catalog
service.

It covers every query the application renders (trending, popular, top-rated,
upcoming, details, similar, text search, genre lists, and the TV-show
variants) and normalizes provider responses into the record shapes below.

Architecture:

  - Stateless: the client holds no caches; every call is a fresh
    request/response mapping.
  - Bounded: paginated queries clamp the reported page count to the hard cap
    in [pagination] so "load more" can never run unbounded.
  - Uniform failures: every operation returns an [apperr.AppError]; callers
    render failures as empty results but keep the Kind for telemetry.
*/
package catalog

// TimeWindow selects the trending aggregation window.
type TimeWindow string

const (
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)

// Movie is the read-only summary projection returned by list queries.
// Immutable once fetched; never persisted beyond the current view.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// Show is the TV-show counterpart of [Movie]. The provider names the title
// and release fields differently for TV records.
type Show struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

// Genre is one entry of the provider's genre list.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Video is an embedded video entry on a detail record, used to locate a
// trailer.
type Video struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// CastMember is one embedded cast credit on a detail record.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is one embedded crew credit on a detail record.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// MovieDetails is the superset record returned by the details query, with
// genres resolved to names and videos/credits appended.
type MovieDetails struct {
	Movie

	Genres  []Genre `json:"genres"`
	Runtime int     `json:"runtime"`
	Status  string  `json:"status"`
	Tagline string  `json:"tagline"`

	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`

	Credits struct {
		Cast []CastMember `json:"cast"`
		Crew []CrewMember `json:"crew"`
	} `json:"credits"`
}

// FirstTrailer returns the first YouTube video of type "Trailer", or nil when
// the record carries none. The detail page uses it to drive the player.
func (d *MovieDetails) FirstTrailer() *Video {
	for i := range d.Videos.Results {
		video := &d.Videos.Results[i]
		if video.Site == "YouTube" && video.Type == "Trailer" {
			return video
		}
	}
	return nil
}

// MoviePage is one page of a paginated movie query. TotalPages is already
// clamped to the hard cap by the client.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// ShowPage is one page of a paginated TV-show query.
type ShowPage struct {
	Page         int    `json:"page"`
	Results      []Show `json:"results"`
	TotalPages   int    `json:"total_pages"`
	TotalResults int    `json:"total_results"`
}
