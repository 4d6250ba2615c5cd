package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL     = "https://forkify-api.herokuapp.com/api/v2/recipes"
	defaultDBPath         = "forkify.db"
	defaultStore          = "sqlite"
	defaultResultsPerPage = 10
	defaultTimeout        = 10 * time.Second
	defaultRatePerSec     = 2
	defaultLogLevel       = "info"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIKey         string        `yaml:"api_key"`
	APIBaseURL     string        `yaml:"api_base_url"`
	DBPath         string        `yaml:"db_path"`
	Store          string        `yaml:"store"`
	ResultsPerPage int           `yaml:"results_per_page"`
	Timeout        time.Duration `yaml:"timeout"`
	RatePerSec     float64       `yaml:"rate_per_sec"`
	LogPath        string        `yaml:"log_path"`
	LogLevel       string        `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		DBPath:         defaultDBPath,
		Store:          defaultStore,
		ResultsPerPage: defaultResultsPerPage,
		Timeout:        defaultTimeout,
		RatePerSec:     defaultRatePerSec,
		LogLevel:       defaultLogLevel,
	}
}

// LoadFromEnv layers defaults, the YAML file named by FORKIFY_CONFIG and
// FORKIFY_* variables, in that order.
func LoadFromEnv() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("FORKIFY_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}

	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	overlay(c, file)

	// overlay skips zero values, but an explicit rate_per_sec: 0 disables
	// rate limiting.
	var rate struct {
		RatePerSec *float64 `yaml:"rate_per_sec"`
	}
	if err := yaml.Unmarshal(data, &rate); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if rate.RatePerSec != nil {
		c.RatePerSec = *rate.RatePerSec
	}
	return nil
}

func (c *Config) mergeEnv() error {
	overlay(c, Config{
		APIKey:     os.Getenv("FORKIFY_API_KEY"),
		APIBaseURL: os.Getenv("FORKIFY_API_BASE_URL"),
		DBPath:     os.Getenv("FORKIFY_DB_PATH"),
		Store:      os.Getenv("FORKIFY_STORE"),
		LogPath:    os.Getenv("FORKIFY_LOG_PATH"),
		LogLevel:   os.Getenv("FORKIFY_LOG_LEVEL"),
	})

	if v := os.Getenv("FORKIFY_RESULTS_PER_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FORKIFY_RESULTS_PER_PAGE must be an integer: %s", v)
		}
		c.ResultsPerPage = n
	}
	if v := os.Getenv("FORKIFY_TIMEOUT_SEC"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FORKIFY_TIMEOUT_SEC must be an integer: %s", v)
		}
		c.Timeout = time.Duration(n) * time.Second
	}
	// Zero disables client-side rate limiting.
	if v := os.Getenv("FORKIFY_RATE_PER_SEC"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FORKIFY_RATE_PER_SEC must be a number: %s", v)
		}
		c.RatePerSec = f
	}
	return nil
}

// overlay copies the non-zero fields of src onto dst.
func overlay(dst *Config, src Config) {
	if src.APIKey != "" {
		dst.APIKey = src.APIKey
	}
	if src.APIBaseURL != "" {
		dst.APIBaseURL = src.APIBaseURL
	}
	if src.DBPath != "" {
		dst.DBPath = src.DBPath
	}
	if src.Store != "" {
		dst.Store = src.Store
	}
	if src.ResultsPerPage != 0 {
		dst.ResultsPerPage = src.ResultsPerPage
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.RatePerSec != 0 {
		dst.RatePerSec = src.RatePerSec
	}
	if src.LogPath != "" {
		dst.LogPath = src.LogPath
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	if c.Store != "sqlite" && c.Store != "bolt" {
		return fmt.Errorf("Store must be sqlite or bolt: %s", c.Store)
	}
	if c.ResultsPerPage < 1 {
		return fmt.Errorf("ResultsPerPage must be positive: %d", c.ResultsPerPage)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be positive: %s", c.Timeout)
	}
	if c.RatePerSec < 0 {
		return fmt.Errorf("RatePerSec must not be negative: %v", c.RatePerSec)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	return nil
}

// CanUpload reports whether uploads are possible; the API requires a key.
func (c Config) CanUpload() bool {
	return c.APIKey != ""
}
