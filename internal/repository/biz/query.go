package biz

import (
	"strings"

	apperrors "github.com/lk2023060901/repo-ranker/internal/pkg/errors"
	"github.com/lk2023060901/repo-ranker/internal/pkg/validator"
	"github.com/lk2023060901/repo-ranker/internal/repository/types"
)

const msgInvalidOrder = "Invalid order. Use 'asc' or 'desc'."

// SearchParams are the raw query string values of a search request
type SearchParams struct {
	Language     string `form:"language"`
	CreatedAfter string `form:"createdAfter"`
	Page         string `form:"page"`
	PerPage      string `form:"perPage"`
	Sort         string `form:"sort"`
	Order        string `form:"order"`
	Explain      string `form:"explain"`
}

// ParseSearchQuery validates raw parameters into a SearchQuery
func ParseSearchQuery(p SearchParams) (*types.SearchQuery, error) {
	createdAfter, err := validator.ParseDate(p.CreatedAfter)
	if err != nil {
		return nil, err
	}

	page, err := validator.ParseInt(p.Page, types.DefaultPage, validator.AtLeast(1))
	if err != nil {
		return nil, err
	}

	perPage, err := validator.ParseInt(p.PerPage, types.DefaultPerPage, validator.Between(1, types.MaxPerPage))
	if err != nil {
		return nil, err
	}

	if err := validator.CheckResultWindow(page, perPage); err != nil {
		return nil, err
	}

	order := strings.ToLower(strings.TrimSpace(p.Order))
	if !validator.OneOf(order, "asc", "desc") {
		return nil, apperrors.NewValidationError(msgInvalidOrder)
	}

	return &types.SearchQuery{
		Language:     strings.TrimSpace(p.Language),
		CreatedAfter: createdAfter,
		Page:         page,
		PerPage:      perPage,
		Sort:         strings.TrimSpace(p.Sort),
		Order:        order,
		Explain:      validator.ParseBool(p.Explain),
	}, nil
}
