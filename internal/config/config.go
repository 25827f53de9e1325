// Package config loads process configuration from an optional env file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"ia-service/internal/domain/simulation"
)

var ErrNoTokens = errors.New("no auth tokens configured: set AUTH_TOKENS or AUTH_TOKENS_FILE")

type Config struct {
	Port       string
	AppName    string
	AppVersion string
	Env        string
	LogLevel   string

	// AuthTokens is the process-wide allow-list. It is never modified after Load.
	AuthTokens         []string
	InvalidTokenStatus int
	ClientPolicy       simulation.ClientPolicy

	RedisAddr string
	UsageTTL  time.Duration
}

type tokenFile struct {
	Tokens []string `yaml:"tokens"`
}

// Load reads envFile (if present) into the environment and builds a Config.
// envLoaded reports whether the file was found.
func Load(envFile string) (cfg *Config, envLoaded bool, err error) {
	if envFile != "" {
		envLoaded = godotenv.Load(envFile) == nil
	}
	cfg, err = FromEnv()
	return cfg, envLoaded, err
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       getenv("PORT", "8000"),
		AppName:    getenv("APP_NAME", "IA-as-a-Service"),
		AppVersion: os.Getenv("APP_VERSION"),
		Env:        os.Getenv("ENV"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		RedisAddr:  strings.TrimSpace(os.Getenv("REDIS_ADDR")),
	}

	tokens := splitList(os.Getenv("AUTH_TOKENS"))
	if path := strings.TrimSpace(os.Getenv("AUTH_TOKENS_FILE")); path != "" {
		fromFile, err := readTokenFile(path)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, fromFile...)
	}
	cfg.AuthTokens = dedupe(tokens)
	if len(cfg.AuthTokens) == 0 {
		return nil, ErrNoTokens
	}

	status, err := strconv.Atoi(getenv("AUTH_INVALID_TOKEN_STATUS", "401"))
	if err != nil || (status != 401 && status != 403) {
		return nil, fmt.Errorf("AUTH_INVALID_TOKEN_STATUS must be 401 or 403, got %q", os.Getenv("AUTH_INVALID_TOKEN_STATUS"))
	}
	cfg.InvalidTokenStatus = status

	cfg.ClientPolicy, err = simulation.ParseClientPolicy(os.Getenv("CLIENT_CLASSIFICATION_POLICY"))
	if err != nil {
		return nil, err
	}

	cfg.UsageTTL, err = time.ParseDuration(getenv("USAGE_TTL", "720h"))
	if err != nil || cfg.UsageTTL < 0 {
		return nil, fmt.Errorf("invalid USAGE_TTL %q", os.Getenv("USAGE_TTL"))
	}

	return cfg, nil
}

func readTokenFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read token file: %w", err)
	}
	var tf tokenFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parse token file %s: %w", path, err)
	}
	return tf.Tokens, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
