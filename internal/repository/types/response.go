package types

import "time"

// RankedResult is a scored repository as returned to clients
type RankedResult struct {
	Name      string             `json:"name"`
	FullName  string             `json:"fullName"`
	Stars     int                `json:"stars"`
	Forks     int                `json:"forks"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Score     float64            `json:"score"`
	URL       string             `json:"url"`
	Signals   map[string]float64 `json:"signals,omitempty"`
}

// Meta echoes the requested page and the upstream total
type Meta struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Meta Meta            `json:"meta"`
	Data []*RankedResult `json:"data"`
}
