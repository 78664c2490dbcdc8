package types

import "time"

// Repository is the subset of an upstream search hit the ranker needs
type Repository struct {
	Name      string
	FullName  string
	Stars     int
	Forks     int
	UpdatedAt time.Time
	HTMLURL   string
}

// SearchResult is one page of upstream hits
type SearchResult struct {
	TotalCount int
	Items      []*Repository
}

// ScoreInput holds the attributes the scoring signals read
type ScoreInput struct {
	Stars     int
	Forks     int
	UpdatedAt time.Time
}

// ScoreInput extracts the scored attributes of r
func (r *Repository) ScoreInput() ScoreInput {
	return ScoreInput{
		Stars:     r.Stars,
		Forks:     r.Forks,
		UpdatedAt: r.UpdatedAt,
	}
}
