// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package catalog

import "strings"

// SizeTier names a requested image size. Tiers are mapped to provider size
// tokens per image kind (posters and backdrops use different token sets).
type SizeTier string

const (
	SizeSmall    SizeTier = "small"
	SizeMedium   SizeTier = "medium"
	SizeLarge    SizeTier = "large"
	SizeOriginal SizeTier = "original"
)

// Placeholder is the stable reference produced for an absent path fragment.
// Callers always receive something renderable, never a malformed URL.
const Placeholder = "/placeholder.svg"

var posterTokens = map[SizeTier]string{
	SizeSmall:    "w185",
	SizeMedium:   "w342",
	SizeLarge:    "w500",
	SizeOriginal: "original",
}

var backdropTokens = map[SizeTier]string{
	SizeSmall:    "w300",
	SizeMedium:   "w780",
	SizeLarge:    "w1280",
	SizeOriginal: "original",
}

// ImageResolver turns raw path fragments from catalog records into fully
// qualified asset references.
type ImageResolver struct {
	baseURL string
}

// NewImageResolver constructs a resolver rooted at the static asset host.
func NewImageResolver(baseURL string) *ImageResolver {
	return &ImageResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// PosterURL resolves a poster path fragment at the requested tier.
// An empty fragment yields [Placeholder]. An unknown tier falls back to medium.
func (r *ImageResolver) PosterURL(path string, tier SizeTier) string {
	return r.resolve(path, tier, posterTokens)
}

// BackdropURL resolves a backdrop path fragment at the requested tier.
// An empty fragment yields [Placeholder]. An unknown tier falls back to medium.
func (r *ImageResolver) BackdropURL(path string, tier SizeTier) string {
	return r.resolve(path, tier, backdropTokens)
}

func (r *ImageResolver) resolve(path string, tier SizeTier, tokens map[SizeTier]string) string {
	if path == "" {
		return Placeholder
	}

	token, ok := tokens[tier]
	if !ok {
		token = tokens[SizeMedium]
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return r.baseURL + "/" + token + path
}
