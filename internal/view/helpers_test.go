// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package view_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/prashant-2204/glassstream/internal/catalog"
)

// catalogFake is an in-memory catalog endpoint for view tests. Paginated
// listings serve deterministic pages; tests can count calls per route, force
// failures, and hold responses open to exercise stale-response handling.
type catalogFake struct {
	*httptest.Server

	mu         sync.Mutex
	calls      map[string]int
	failing    map[string]bool
	totalPages int
	// release, when set, blocks every handler until closed.
	release chan struct{}
}

func newCatalogFake(t *testing.T) *catalogFake {
	t.Helper()

	f := &catalogFake{
		calls:      map[string]int{},
		failing:    map[string]bool{},
		totalPages: 3,
	}

	router := chi.NewRouter()
	router.Get("/trending/movie/{window}", f.listing("trending"))
	router.Get("/movie/popular", f.listing("popular"))
	router.Get("/movie/top_rated", f.listing("top_rated"))
	router.Get("/movie/upcoming", f.listing("upcoming"))
	router.Get("/search/movie", f.listing("search"))
	router.Get("/movie/{id}/similar", f.listing("similar"))
	router.Get("/movie/{id}", f.handleDetails)

	f.Server = httptest.NewServer(router)
	t.Cleanup(f.Close)
	return f
}

func (f *catalogFake) client() *catalog.Client {
	return catalog.New(f.URL, "test-token", 5*time.Second, 0, nil)
}

func (f *catalogFake) callCount(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

func (f *catalogFake) setFailing(route string, failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[route] = failing
}

// hold makes every subsequent handler block until the returned func is called.
func (f *catalogFake) hold() (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.release = ch
	f.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// enter records the call and applies blocking/failure directives.
func (f *catalogFake) enter(route string, w http.ResponseWriter) bool {
	f.mu.Lock()
	f.calls[route]++
	failing := f.failing[route]
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}
	if failing {
		w.WriteHeader(http.StatusInternalServerError)
		return false
	}
	return true
}

// listing serves deterministic pages: page p carries two movies with ids
// p*100+1 and p*100+2, the first tagged Action, the second Drama.
func (f *catalogFake) listing(route string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !f.enter(route, w) {
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}

		f.mu.Lock()
		totalPages := f.totalPages
		f.mu.Unlock()

		writeJSON(w, catalog.MoviePage{
			Page:       page,
			TotalPages: totalPages,
			Results: []catalog.Movie{
				{ID: page*100 + 1, Title: route + " A", GenreIDs: []int{28}},
				{ID: page*100 + 2, Title: route + " B", GenreIDs: []int{18}},
			},
		})
	}
}

func (f *catalogFake) handleDetails(w http.ResponseWriter, r *http.Request) {
	if !f.enter("details", w) {
		return
	}

	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	details := catalog.MovieDetails{}
	details.ID = id
	details.Title = "Movie " + strconv.Itoa(id)
	writeJSON(w, details)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
