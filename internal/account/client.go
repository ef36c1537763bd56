// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/internal/platform/httpx"
	"github.com/prashant-2204/glassstream/internal/platform/validate"
)

// Client issues requests against the user/comments service.
type Client struct {
	http   *httpx.Client
	logger *slog.Logger
}

/*
New constructs an account client.

Parameters:
  - baseURL: Account API base URL.
  - timeout: Transport deadline per request. No retries are attempted.
  - logger: Structured logger. A nil logger falls back to slog.Default().
*/
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		http:   httpx.New("account", baseURL, timeout, logger),
		logger: logger,
	}
}

// # Liveness

/*
Ping probes the service's liveness endpoint.

Description: Success is signaled by the response body, not merely the status
code. Used as the pre-flight reachability check before login attempts.

Returns:
  - error: apperr.Unreachable when the service cannot be reached or does not
    report success.
*/
func (c *Client) Ping(ctx context.Context) error {
	probe := struct {
		Status string `json:"status"`
	}{}

	if err := c.http.GetJSON(ctx, "account_ping", "/test", nil, &probe); err != nil {
		return apperr.Unreachable("account", err)
	}
	if probe.Status != "success" {
		return apperr.Unreachable("account", fmt.Errorf("account_ping_status: %q", probe.Status))
	}
	return nil
}

// # Identity

/*
LookupOrCreate resolves a display name to an identity, creating one with
empty saved/liked sets when the name has never been seen (idempotent upsert).

Parameters:
  - ctx: context.Context
  - displayName: Unique, case-sensitive lookup key.

Returns:
  - *Identity: The server's record.
  - error: Validation, transport, status, or decode failure.
*/
func (c *Client) LookupOrCreate(ctx context.Context, displayName string) (*Identity, error) {
	v := &validate.Validator{}
	if err := v.Required("username", displayName).MaxLen("username", displayName, 64).Err(); err != nil {
		return nil, err
	}

	identity := &Identity{}
	path := "/users/" + url.PathEscape(displayName)
	if err := c.http.GetJSON(ctx, "account_lookup", path, nil, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

/*
UpdateProfile applies a partial profile mutation and returns the server's
full updated record.

Description: The returned record must replace any cached identity wholesale,
never merged field-by-field, because the server is authoritative for derived
fields.

Parameters:
  - ctx: context.Context
  - identityID: Server-assigned identity id.
  - update: Fields to change; nil fields are left untouched.

Returns:
  - *Identity: The replaced record.
  - error: Validation, transport, status, or decode failure.
*/
func (c *Client) UpdateProfile(ctx context.Context, identityID string, update ProfileUpdate) (*Identity, error) {
	v := &validate.Validator{}
	if update.Username != nil {
		v.Required("username", *update.Username).MaxLen("username", *update.Username, 64)
	}
	if update.Avatar != nil {
		v.URL("profilePicture", *update.Avatar)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	identity := &Identity{}
	path := "/users/" + url.PathEscape(identityID)
	if err := c.http.Send(ctx, "account_update_profile", http.MethodPut, path, update, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// # Saved / Liked Toggles

// ToggleSaved flips the saved-set membership of movieID on the server and
// returns the full updated set, which is the new source of truth.
func (c *Client) ToggleSaved(ctx context.Context, identityID string, movieID int) ([]int, error) {
	return c.toggle(ctx, "account_toggle_saved", identityID, "saved", movieID)
}

// ToggleLiked flips the liked-set membership of movieID on the server and
// returns the full updated set, which is the new source of truth.
func (c *Client) ToggleLiked(ctx context.Context, identityID string, movieID int) ([]int, error) {
	return c.toggle(ctx, "account_toggle_liked", identityID, "liked", movieID)
}

// toggle performs the single round-trip membership flip. The client never
// computes the new state locally before confirmation.
func (c *Client) toggle(ctx context.Context, operation, identityID, listName string, movieID int) ([]int, error) {
	var updated []int
	path := fmt.Sprintf("/users/%s/%s/%d", url.PathEscape(identityID), listName, movieID)
	if err := c.http.Send(ctx, operation, http.MethodPut, path, nil, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// # Comments

/*
ListComments returns the comments for a movie in server order.

Description: This operation never fails to the caller. Transport errors
degrade to an empty sequence with a logged-only error, so the comment thread
renders regardless.
*/
func (c *Client) ListComments(ctx context.Context, movieID int) []Comment {
	var comments []Comment
	path := fmt.Sprintf("/movies/%d/comments", movieID)
	if err := c.http.GetJSON(ctx, "account_list_comments", path, nil, &comments); err != nil {
		c.logger.Warn("comment_list_degraded",
			slog.Int("movie_id", movieID),
			slog.String("kind", apperr.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return comments
}

/*
PostComment creates a comment on a movie, snapshotting the author's id,
display name, and avatar into the record.

Description: Requires a non-blank, whitespace-trimmed body. The caller gates
on authentication before invoking; this client trusts the supplied author.

Parameters:
  - ctx: context.Context
  - author: Identity snapshot denormalized into the comment.
  - movieID: Target movie.
  - content: Comment body; trimmed before sending.

Returns:
  - *Comment: The created record, for optimistic prepend.
  - error: Validation (no network call made), transport, status, or decode
    failure.
*/
func (c *Client) PostComment(ctx context.Context, author Identity, movieID int, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.ValidationError("Comment body must not be blank",
			apperr.FieldError{Field: "content", Message: "This field is required"})
	}

	payload := struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
		Avatar   string `json:"profilePicture"`
		Content  string `json:"content"`
	}{
		UserID:   author.ID,
		Username: author.Username,
		Avatar:   author.Avatar,
		Content:  content,
	}

	comment := &Comment{}
	path := fmt.Sprintf("/movies/%d/comments", movieID)
	if err := c.http.Send(ctx, "account_post_comment", http.MethodPost, path, payload, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment by id. Ownership is enforced by the
// consuming view and whatever the remote service itself checks.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	path := "/movies/comments/" + url.PathEscape(commentID)
	return c.http.Send(ctx, "account_delete_comment", http.MethodDelete, path, nil, nil)
}
