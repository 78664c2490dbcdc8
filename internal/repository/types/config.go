package types

import (
	"net/url"
	"time"
)

type ProviderID string

const (
	ProviderGitHub ProviderID = "github"
)

// ProviderConfig represents search provider configuration
type ProviderConfig struct {
	ID      ProviderID    `json:"id" yaml:"id"`
	BaseURL string        `json:"base_url" yaml:"base_url"`
	Token   string        `json:"token,omitempty" yaml:"token,omitempty"`
	Timeout time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

// Validate validates the provider configuration. The token is optional.
func (c *ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrInvalidProviderID
	}
	if c.BaseURL == "" {
		return ErrInvalidBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidBaseURL
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	return nil
}
