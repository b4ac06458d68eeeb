package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the viewer's persistent settings.
type Config struct {
	Bucket        string
	ReportPrefix  string
	Region        string
	Profile       string
	Endpoint      string
	Theme         string
	LogFile       string
	FetchAttempts int
}

const (
	DefaultPath          = "~/.config/patternview/config.toml"
	defaultBucket        = "nwlogs"
	defaultReportPrefix  = "log-patterns-reports"
	defaultRegion        = "cn-northwest-1"
	defaultTheme         = "Nightfox"
	defaultLogFile       = "~/.local/state/patternview/patternview.log"
	defaultFetchAttempts = 3
	maxFetchAttempts     = 10
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Bucket:        defaultBucket,
		ReportPrefix:  defaultReportPrefix,
		Region:        defaultRegion,
		Theme:         defaultTheme,
		LogFile:       mustExpand(defaultLogFile),
		FetchAttempts: defaultFetchAttempts,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// is missing or a field is left empty.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Bucket        string `toml:"bucket"`
		ReportPrefix  string `toml:"report_prefix"`
		Region        string `toml:"region"`
		Profile       string `toml:"profile"`
		Endpoint      string `toml:"endpoint"`
		Theme         string `toml:"theme"`
		LogFile       string `toml:"log_file"`
		FetchAttempts int    `toml:"fetch_attempts"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Bucket = orDefault(raw.Bucket, defaultBucket)
	cfg.ReportPrefix = orDefault(raw.ReportPrefix, defaultReportPrefix)
	cfg.Region = orDefault(raw.Region, defaultRegion)
	cfg.Profile = strings.TrimSpace(raw.Profile)
	cfg.Endpoint = strings.TrimSpace(raw.Endpoint)
	cfg.Theme = orDefault(raw.Theme, defaultTheme)

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		if cfg.LogFile, err = expandPath(logFile); err != nil {
			return Config{}, fmt.Errorf("expand log_file: %w", err)
		}
	}

	cfg.FetchAttempts = clampAttempts(raw.FetchAttempts)
	return cfg, nil
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func clampAttempts(n int) int {
	switch {
	case n <= 0:
		return defaultFetchAttempts
	case n > maxFetchAttempts:
		return maxFetchAttempts
	default:
		return n
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(DefaultPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
