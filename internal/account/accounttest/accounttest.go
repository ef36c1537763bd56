// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

// Package accounttest provides an in-memory double of the user/comments
// service, to be used in tests across the module.
//
// The double implements the full endpoint surface (liveness probe,
// lookup-or-create, profile update, saved/liked toggles, comment CRUD) with
// upsert and toggle semantics matching the real service, and counts calls
// per route so tests can assert on network behavior.
package accounttest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/prashant-2204/glassstream/internal/account"
)

// Server is the running fake service.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	healthy  bool
	users    map[string]*account.Identity // keyed by username (case-sensitive)
	byID     map[string]*account.Identity
	comments map[int][]account.Comment
	nextUser int
	nextComm int
	calls    map[string]int
}

// New starts the fake service in a healthy state. The caller must Close it.
func New() *Server {
	s := &Server{
		healthy:  true,
		users:    map[string]*account.Identity{},
		byID:     map[string]*account.Identity{},
		comments: map[int][]account.Comment{},
		calls:    map[string]int{},
	}

	router := chi.NewRouter()
	router.Get("/test", s.handleProbe)
	router.Get("/users/{username}", s.handleLookup)
	router.Put("/users/{id}", s.handleUpdate)
	router.Put("/users/{id}/saved/{movieID}", s.handleToggle("saved"))
	router.Put("/users/{id}/liked/{movieID}", s.handleToggle("liked"))
	router.Get("/movies/{movieID}/comments", s.handleListComments)
	router.Post("/movies/{movieID}/comments", s.handlePostComment)
	router.Delete("/movies/comments/{commentID}", s.handleDeleteComment)

	s.Server = httptest.NewServer(router)
	return s
}

// SetHealthy flips the liveness probe result.
func (s *Server) SetHealthy(healthy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthy = healthy
}

// Calls returns how many requests hit the named route
// (probe, lookup, update, toggle_saved, toggle_liked, list_comments,
// post_comment, delete_comment).
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// SeedComment installs a comment directly, bypassing the HTTP surface.
func (s *Server) SeedComment(comment account.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.MovieID] = append(s.comments[comment.MovieID], comment)
}

func (s *Server) count(route string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[route]++
}

func (s *Server) handleProbe(w http.ResponseWriter, _ *http.Request) {
	s.count("probe")

	s.mu.Lock()
	healthy := s.healthy
	s.mu.Unlock()

	status := "success"
	if !healthy {
		status = "error"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	s.count("lookup")
	username := chi.URLParam(r, "username")

	s.mu.Lock()
	identity, ok := s.users[username]
	if !ok {
		s.nextUser++
		identity = &account.Identity{
			ID:          fmt.Sprintf("u%d", s.nextUser),
			Username:    username,
			SavedMovies: []int{},
			LikedMovies: []int{},
		}
		s.users[username] = identity
		s.byID[identity.ID] = identity
	}
	snapshot := *identity
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	s.count("update")
	id := chi.URLParam(r, "id")

	var update account.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	identity, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if update.Username != nil {
		delete(s.users, identity.Username)
		identity.Username = *update.Username
		s.users[identity.Username] = identity
	}
	if update.Avatar != nil {
		identity.Avatar = *update.Avatar
	}
	snapshot := *identity
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleToggle(list string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.count("toggle_" + list)
		id := chi.URLParam(r, "id")
		movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		identity, ok := s.byID[id]
		if !ok {
			s.mu.Unlock()
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var target *[]int
		if list == "saved" {
			target = &identity.SavedMovies
		} else {
			target = &identity.LikedMovies
		}
		*target = flip(*target, movieID)
		updated := append([]int(nil), *target...)
		s.mu.Unlock()

		writeJSON(w, http.StatusOK, updated)
	}
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	s.count("list_comments")
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieID"))

	s.mu.Lock()
	list := append([]account.Comment(nil), s.comments[movieID]...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handlePostComment(w http.ResponseWriter, r *http.Request) {
	s.count("post_comment")
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieID"))

	var payload struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
		Avatar   string `json:"profilePicture"`
		Content  string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextComm++
	comment := account.Comment{
		ID:        fmt.Sprintf("c%d", s.nextComm),
		UserID:    payload.UserID,
		MovieID:   movieID,
		Content:   payload.Content,
		Username:  payload.Username,
		Avatar:    payload.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	s.comments[movieID] = append(s.comments[movieID], comment)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, comment)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	s.count("delete_comment")
	commentID := chi.URLParam(r, "commentID")

	s.mu.Lock()
	defer s.mu.Unlock()
	for movieID, list := range s.comments {
		for i, comment := range list {
			if comment.ID == commentID {
				s.comments[movieID] = append(list[:i], list[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

// flip toggles membership of movieID in ids.
func flip(ids []int, movieID int) []int {
	for i, id := range ids {
		if id == movieID {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, movieID)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
