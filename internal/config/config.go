// Package config loads program guide settings from command-line flags,
// environment variables and .env files.
package config

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/idna"

	domainerrors "github.com/listenupapp/programguide/internal/errors"
	"github.com/listenupapp/programguide/internal/validation"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Guide     GuideConfig
	Transport TransportConfig
	Cache     CacheConfig
	Gateway   GatewayConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `json:"env" validate:"oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `json:"log_level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// GuideConfig selects the upstream APIs.
type GuideConfig struct {
	// APIKey may be empty for commands that never call the API; see
	// RequireAPIKey.
	APIKey      string `json:"api_key"`
	Domain      string `json:"domain" validate:"required,hostname_port|hostname_rfc1123"`
	Version     string `json:"version" validate:"required,guideversion"`
	Secure      bool   `json:"secure"`
	RadioDomain string `json:"radio_domain" validate:"required,hostname_port|hostname_rfc1123"`
}

// TransportConfig tunes the outbound HTTP client.
type TransportConfig struct {
	Timeout           time.Duration `json:"timeout" validate:"gt=0"`
	RequestsPerSecond float64       `json:"rps" validate:"gte=0"`
	Burst             int           `json:"burst" validate:"gte=1"`
	UserAgent         string        `json:"user_agent" validate:"required"`
}

// CacheConfig selects the upstream response cache.
type CacheConfig struct {
	Backend string `json:"cache" validate:"oneof=none badger sqlite redis"`
	// Path is the Badger directory or SQLite file. Empty keeps a Badger
	// cache in memory; SQLite requires it.
	Path     string        `json:"cache_path" validate:"required_if=Backend sqlite"`
	RedisURL string        `json:"cache_redis_url" validate:"required_if=Backend redis,omitempty,url"`
	TTL      time.Duration `json:"cache_ttl" validate:"gte=0"`
}

// GatewayConfig configures the local HTTP gateway.
type GatewayConfig struct {
	Port              string        `json:"port" validate:"required,numeric"`
	ReadTimeout       time.Duration `json:"read_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `json:"write_timeout" validate:"gt=0"`
	IdleTimeout       time.Duration `json:"idle_timeout" validate:"gt=0"`
	AllowedOrigins    []string      `json:"allowed_origins"`
	RequestsPerSecond float64       `json:"gateway_rps" validate:"gte=0"`
	Burst             int           `json:"gateway_burst" validate:"gte=1"`
}

// Overrides carries flag values. Empty strings fall through to the
// environment.
type Overrides struct {
	EnvFile     string
	Env         string
	LogLevel    string
	APIKey      string
	Domain      string
	Version     string
	Secure      string
	RadioDomain string
	Timeout     string
	Port        string
	Cache       string
}

// Load builds a Config with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(o Overrides) (*Config, error) {
	envFile := o.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// A missing .env file is fine.
	_ = loadEnvFile(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(o.Env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(o.LogLevel, "LOG_LEVEL", "info"),
		},
		Guide: GuideConfig{
			APIKey:      getConfigValue(o.APIKey, "NHK_API_KEY", ""),
			Domain:      getConfigValue(o.Domain, "NHK_DOMAIN", "api.nhk.or.jp"),
			Version:     getConfigValue(o.Version, "NHK_VERSION", "v1"),
			Secure:      getBoolConfigValue(o.Secure, "NHK_SECURE", false),
			RadioDomain: getConfigValue("", "NHK_RADIO_DOMAIN", "program-api.nhk.jp"),
		},
		Transport: TransportConfig{
			RequestsPerSecond: getFloatConfigValue("", "NHK_RPS", 1),
			Burst:             getIntConfigValue("", "NHK_BURST", 3),
			UserAgent:         getConfigValue("", "NHK_USER_AGENT", "programguide/1.0"),
		},
		Cache: CacheConfig{
			Backend:  getConfigValue(o.Cache, "NHK_CACHE", "none"),
			Path:     getConfigValue("", "NHK_CACHE_PATH", ""),
			RedisURL: getConfigValue("", "NHK_CACHE_REDIS_URL", ""),
		},
		Gateway: GatewayConfig{
			Port:              getConfigValue(o.Port, "GATEWAY_PORT", "8080"),
			AllowedOrigins:    splitList(getConfigValue("", "GATEWAY_ALLOWED_ORIGINS", "*")),
			RequestsPerSecond: getFloatConfigValue("", "GATEWAY_RPS", 5),
			Burst:             getIntConfigValue("", "GATEWAY_BURST", 10),
		},
	}

	durations := []struct {
		dst          *time.Duration
		flag, envKey string
		def          string
	}{
		{&cfg.Transport.Timeout, o.Timeout, "NHK_TIMEOUT", "30s"},
		{&cfg.Cache.TTL, "", "NHK_CACHE_TTL", "5m"},
		{&cfg.Gateway.ReadTimeout, "", "GATEWAY_READ_TIMEOUT", "15s"},
		{&cfg.Gateway.WriteTimeout, "", "GATEWAY_WRITE_TIMEOUT", "35s"},
		{&cfg.Gateway.IdleTimeout, "", "GATEWAY_IDLE_TIMEOUT", "60s"},
	}
	for _, d := range durations {
		raw := getConfigValue(d.flag, d.envKey, d.def)
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.envKey, raw, err)
		}
		*d.dst = parsed
	}

	if err := cfg.normalizeDomains(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every section. The API key is checked separately by
// RequireAPIKey.
func (c *Config) Validate() error {
	return validation.New().Validate(c)
}

// RequireAPIKey fails when no API key is configured.
func (c *Config) RequireAPIKey() error {
	if c.Guide.APIKey == "" {
		return domainerrors.ValidationWithDetails("api key missing", map[string]string{
			"api_key": "set --api-key or NHK_API_KEY",
		})
	}
	return nil
}

// normalizeDomains converts internationalised host names to their ASCII
// form so they can be put into a URL.
func (c *Config) normalizeDomains() error {
	for _, host := range []*string{&c.Guide.Domain, &c.Guide.RadioDomain} {
		normalized, err := NormalizeHost(*host)
		if err != nil {
			return err
		}
		*host = normalized
	}
	return nil
}

// NormalizeHost lowercases host and converts it to punycode, keeping any
// port.
func NormalizeHost(host string) (string, error) {
	name, port := host, ""
	if h, p, err := net.SplitHostPort(host); err == nil {
		name, port = h, p
	}

	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("invalid host %q: %w", host, err)
	}
	if port != "" {
		return net.JoinHostPort(ascii, port), nil
	}
	return ascii, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getBoolConfigValue accepts "true", "1" and "yes" (case-insensitive) as
// true; any other non-empty value is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// loadEnvFile loads KEY=value lines from path. Variables already set in
// the environment win.
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- path comes from the operator
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}
		key = strings.TrimSpace(strings.TrimPrefix(key, "export "))
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
