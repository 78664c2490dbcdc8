package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
)

// MaxSearchResults is the GitHub search result window: only the first
// 1000 matches of a query can be paged through.
const MaxSearchResults = 1000

const (
	msgInvalidDate  = "Invalid date format. Use ISO format."
	msgResultWindow = "GitHub Search API only allows access to the first 1000 results. Please reduce page or perPage."
)

// dateLayouts are tried in order. Layouts without a zone parse as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006-01",
	"2006",
}

// Bounds is an inclusive numeric range; nil ends are unchecked
type Bounds struct {
	Min *int
	Max *int
}

// Between returns Bounds with both ends set
func Between(min, max int) *Bounds {
	return &Bounds{Min: &min, Max: &max}
}

// AtLeast returns Bounds with only a lower end
func AtLeast(min int) *Bounds {
	return &Bounds{Min: &min}
}

// ParseDate parses an ISO calendar date. Empty input yields nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}

	return nil, apperrors.NewValidationError(msgInvalidDate)
}

// ParseInt parses raw as an integer. Non-numeric input returns def without
// an error; numeric input outside bounds is a validation error. Integers too
// large for int are clamped and then checked against bounds like any other.
func ParseInt(raw string, def int, bounds *Bounds) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def, nil
	}

	if bounds != nil {
		if bounds.Min != nil && n < *bounds.Min {
			return 0, apperrors.NewValidationError(fmt.Sprintf("Value must be >= %d", *bounds.Min))
		}
		if bounds.Max != nil && n > *bounds.Max {
			return 0, apperrors.NewValidationError(fmt.Sprintf("Value must be <= %d", *bounds.Max))
		}
	}

	return n, nil
}

// ParseBool parses raw leniently; anything unparseable is false
func ParseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}

// CheckResultWindow rejects pages that start beyond the search result window.
// The offset (page-1)*perPage is compared without computing it, so huge
// values cannot wrap around.
func CheckResultWindow(page, perPage int) error {
	if page <= 1 || perPage <= 0 {
		return nil
	}
	if page-1 >= (MaxSearchResults-1)/perPage+1 {
		return apperrors.NewValidationError(msgResultWindow)
	}
	return nil
}

// OneOf reports whether value is empty or one of allowed
func OneOf(value string, allowed ...string) bool {
	if value == "" {
		return true
	}
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
