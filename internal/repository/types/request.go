package types

import "time"

const (
	DefaultPage    = 1
	DefaultPerPage = 30
	MaxPerPage     = 100

	DefaultSort  = "stars"
	DefaultOrder = "desc"
)

// SearchQuery is a validated repository search. It is built per request
// and not modified after validation.
type SearchQuery struct {
	Language     string
	CreatedAfter *time.Time
	Page         int
	PerPage      int
	Sort         string
	Order        string // "", "asc" or "desc"

	// Explain adds per-signal contributions to every result
	Explain bool
}
