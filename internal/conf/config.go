package conf

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/lk2023060901/repo-ranker/internal/pkg/logger"
	"github.com/spf13/viper"
)

// Config is built once at startup and passed to the components that need it
type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	Log    logger.Config `mapstructure:"log"`
	GitHub GitHubConfig  `mapstructure:"github"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// GitHubConfig configures the upstream search client. An empty token is
// valid: requests go out unauthenticated with a lower rate limit.
type GitHubConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

const (
	DefaultPort          = 3000
	DefaultGitHubBaseURL = "https://api.github.com/"
	DefaultGitHubTimeout = 10 * time.Second
)

// envBindings maps config keys to the plain environment variables the
// service has always been configured with.
var envBindings = map[string]string{
	"server.port":     "PORT",
	"github.token":    "GITHUB_TOKEN",
	"github.base_url": "GITHUB_BASE_URL",
	"github.timeout":  "GITHUB_TIMEOUT",
	"log.level":       "LOG_LEVEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)

	defaults := logger.DefaultConfig()
	v.SetDefault("log.level", defaults.Level)
	v.SetDefault("log.format", defaults.Format)
	v.SetDefault("log.output", defaults.Output)
	v.SetDefault("log.enablecaller", defaults.EnableCaller)
	v.SetDefault("log.enablestacktrace", defaults.EnableStacktrace)
	v.SetDefault("log.file.filename", defaults.File.Filename)
	v.SetDefault("log.file.maxsize", defaults.File.MaxSize)
	v.SetDefault("log.file.maxage", defaults.File.MaxAge)
	v.SetDefault("log.file.maxbackups", defaults.File.MaxBackups)
	v.SetDefault("log.file.compress", defaults.File.Compress)

	v.SetDefault("github.base_url", DefaultGitHubBaseURL)
	v.SetDefault("github.token", "")
	v.SetDefault("github.timeout", DefaultGitHubTimeout)
}

// LoadConfig reads defaults, then the optional YAML file at path, then the
// environment. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that would otherwise fail later at startup
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.GitHub.BaseURL == "" {
		return errors.New("github base_url is required")
	}
	if c.GitHub.Timeout < 0 {
		return fmt.Errorf("invalid github timeout: %s", c.GitHub.Timeout)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
