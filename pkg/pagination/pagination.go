// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

// Package pagination provides the shared pager used by every "load more"
// driven list view.
//
// # Overview
//
// The catalog service reports a total-page count per query. The pager clamps
// that count to a hard cap so a view's own "load more" control can never
// drive an unbounded fetch loop, and answers whether another page may be
// requested at all.
package pagination

const (
	// FirstPage is the starting page (1-indexed).
	FirstPage = 1
	// HardPageCap is the upper bound on pages fetched per query, applied on
	// top of whatever total the service reports.
	HardPageCap = 20
)

// Pager tracks the position of one paginated query.
//
// The zero value means "nothing loaded yet": the first Record call
// establishes the page count.
type Pager struct {
	// Page is the last page successfully loaded, 0 before the first load.
	Page int
	// TotalPages is the clamped number of available pages.
	TotalPages int
}

// Record notes a successfully loaded page and the total the service reported.
//
// The reported total is clamped to [HardPageCap] at this single point, so no
// caller ever sees an unclamped count.
func (p *Pager) Record(page, reportedTotal int) {
	p.Page = page
	p.TotalPages = ClampTotal(reportedTotal)
}

// HasMore reports whether another page may be requested.
func (p Pager) HasMore() bool {
	return p.Page < p.TotalPages
}

// Next returns the 1-based page number to request for "load more".
func (p Pager) Next() int {
	if p.Page == 0 {
		return FirstPage
	}
	return p.Page + 1
}

// Reset returns the pager to its unloaded state.
func (p *Pager) Reset() {
	p.Page = 0
	p.TotalPages = 0
}

// ClampTotal bounds a service-reported total-page count to [HardPageCap].
func ClampTotal(reported int) int {
	if reported > HardPageCap {
		return HardPageCap
	}
	if reported < 0 {
		return 0
	}
	return reported
}
