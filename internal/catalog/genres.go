// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package catalog

// DefaultGenres is the static movie genre table shipped with the client.
//
// List views label genre chips from this table without waiting for the genre
// endpoint; a successful [Client.Genres] call supersedes it.
var DefaultGenres = []Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Family"},
	{ID: 14, Name: "Fantasy"},
	{ID: 36, Name: "History"},
	{ID: 27, Name: "Horror"},
	{ID: 10402, Name: "Music"},
	{ID: 9648, Name: "Mystery"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 10770, Name: "TV Movie"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "War"},
	{ID: 37, Name: "Western"},
}

// GenreName resolves a genre id against the provided list, falling back to
// [DefaultGenres] and finally to the empty string.
func GenreName(genres []Genre, id int) string {
	for _, genre := range genres {
		if genre.ID == id {
			return genre.Name
		}
	}
	for _, genre := range DefaultGenres {
		if genre.ID == id {
			return genre.Name
		}
	}
	return ""
}
