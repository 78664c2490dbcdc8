package provider

import (
	"strings"

	"github.com/lk2023060901/repo-ranker/internal/repository/types"
)

// fallbackQuery matches every repository; GitHub rejects an empty q
const fallbackQuery = "stars:>0"

// BuildQuery renders the GitHub search qualifiers for q
func BuildQuery(q *types.SearchQuery) string {
	var parts []string

	if q.Language != "" {
		parts = append(parts, "language:"+q.Language)
	}
	if q.CreatedAfter != nil {
		parts = append(parts, "created:>="+q.CreatedAfter.UTC().Format("2006-01-02"))
	}

	if len(parts) == 0 {
		return fallbackQuery
	}
	return strings.Join(parts, " ")
}

func sortOrDefault(sort string) string {
	if sort == "" {
		return types.DefaultSort
	}
	return sort
}

func orderOrDefault(order string) string {
	if order == "" {
		return types.DefaultOrder
	}
	return order
}
