// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package account implements the read-write client for the user/comments
service.

It performs identity lookup-or-create, profile update, saved/liked toggles,
and comment CRUD. The client is always keyed off an identity supplied by its
caller: it holds no session state of its own and performs no authentication
gating (the session store and the gate own those concerns).
*/
package account

import "time"

// Identity is the client's representation of one user account.
//
// The display name (Username) is also the lookup key: unique and
// case-sensitive. SavedMovies and LikedMovies are unordered id sets without
// duplicates; the server copy is authoritative and every toggle round-trip
// replaces the cached copy wholesale.
type Identity struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Avatar      string `json:"profilePicture"`
	SavedMovies []int  `json:"savedMovies"`
	LikedMovies []int  `json:"likedMovies"`
}

// Comment is one user's remark on one movie.
//
// The author fields (UserID, Username, Avatar) are a snapshot denormalized at
// creation time, not a live reference: later profile edits do not
// retroactively change historical comments.
type Comment struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"userId"`
	MovieID   int       `json:"movieId"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	Avatar    string    `json:"profilePicture"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileUpdate is a partial profile mutation. Nil fields are omitted from
// the request body and left untouched by the server.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Avatar   *string `json:"profilePicture,omitempty"`
}
