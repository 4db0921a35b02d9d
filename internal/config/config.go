package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/randomtoy/fortune-go/internal/domain"
)

// PlaceholderAPIKey is the value shipped in example .env files. It counts as unset.
const PlaceholderAPIKey = "your_api_key_here"

const (
	DefaultPort     = 8080
	DefaultHost     = "127.0.0.1"
	DefaultBasePath = "/demos/digital-fortune-cookie"
)

// Config is read once at startup and passed by value afterwards.
type Config struct {
	APIKey     string
	BasePrompt string
	Host       string
	Port       int
	BasePath   string
	LogLevel   slog.Level
	// LLMTimeout of zero leaves the HTTP client without a timeout.
	LLMTimeout time.Duration
}

func Load() (Config, error) {
	c := Config{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		BasePrompt: envOr("PROMPT", domain.DefaultPrompt),
		Host:       envOr("HOST", DefaultHost),
		Port:       ParsePort(os.Getenv("PORT")),
		BasePath:   NormalizeBasePath(envOr("BASE_PATH", DefaultBasePath)),
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: must not be negative", v)
		}
		c.LLMTimeout = d
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// APIKeyConfigured reports whether a real key is present.
func (c Config) APIKeyConfigured() bool {
	return c.APIKey != "" && c.APIKey != PlaceholderAPIKey
}

func (c Config) HTTPAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParsePort returns DefaultPort for empty or unusable values.
func ParsePort(s string) int {
	p, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil || p == 0 {
		return DefaultPort
	}
	return int(p)
}

// NormalizeBasePath returns "" for the root, otherwise a path with one
// leading slash and no trailing slash.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
