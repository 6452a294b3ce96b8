// Package config loads cleandesk configuration from an optional TOML file,
// an environment overlay file, command-line overrides, and CLEANDESK_*
// environment variables, in increasing order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/cleandesk/internal/notes"
	"github.com/JaimeStill/cleandesk/pkg/provider"
	"github.com/JaimeStill/cleandesk/pkg/storage"
)

const (
	BaseConfigFile       = "cleandesk.toml"
	OverlayConfigPattern = "cleandesk.%s.toml"

	EnvCleandeskEnv = "CLEANDESK_ENV"
	EnvVariant      = "CLEANDESK_VARIANT"
	EnvLogLevel     = "CLEANDESK_LOG_LEVEL"
)

var scanEnv = &notes.Env{
	Root:         "CLEANDESK_SCAN_ROOT",
	Output:       "CLEANDESK_SCAN_OUTPUT",
	NotesFile:    "CLEANDESK_SCAN_NOTES_FILE",
	LocationFile: "CLEANDESK_SCAN_LOCATION_FILE",
	Location:     "CLEANDESK_SCAN_LOCATION",
	MaxNoteSize:  "CLEANDESK_SCAN_MAX_NOTE_SIZE",
}

var agentEnv = &provider.Env{
	Name:    "CLEANDESK_AGENT_NAME",
	BaseURL: "CLEANDESK_AGENT_BASE_URL",
	Model:   "CLEANDESK_AGENT_MODEL",
	Token:   "CLEANDESK_AGENT_TOKEN",
	Timeout: "CLEANDESK_AGENT_TIMEOUT",
}

var storageEnv = &storage.Env{
	ContainerName:    "CLEANDESK_STORAGE_CONTAINER_NAME",
	ConnectionString: "CLEANDESK_STORAGE_CONNECTION_STRING",
	AccountURL:       "CLEANDESK_STORAGE_ACCOUNT_URL",
	Prefix:           "CLEANDESK_STORAGE_PREFIX",
	MaxUploads:       "CLEANDESK_STORAGE_MAX_UPLOADS",
}

// Config is the root configuration for a cleandesk run.
type Config struct {
	Variant  string          `toml:"variant"`
	LogLevel string          `toml:"log_level"`
	Scan     notes.Config    `toml:"scan"`
	Classify ClassifyConfig  `toml:"classify"`
	Report   ReportConfig    `toml:"report"`
	Agent    provider.Config `toml:"agent"`
	Storage  storage.Config  `toml:"storage"`
}

// Env returns the CLEANDESK_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvCleandeskEnv); env != "" {
		return env
	}
	return "local"
}

// Level returns LogLevel as a slog level. Unrecognized values are info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads path (or cleandesk.toml when path is empty and the file exists),
// applies the environment overlay and overrides, and finalizes all values.
// overrides may be nil.
func Load(path string, overrides *Config) (*Config, error) {
	cfg := &Config{}

	base := path
	if base == "" {
		if _, err := os.Stat(BaseConfigFile); err == nil {
			base = BaseConfigFile
		}
	}

	if base != "" {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if overlay := overlayPath(); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	if overrides != nil {
		cfg.Merge(overrides)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.Variant != "" {
		c.Variant = overlay.Variant
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	c.Scan.Merge(&overlay.Scan)
	c.Classify.Merge(&overlay.Classify)
	c.Report.Merge(&overlay.Report)
	c.Agent.Merge(&overlay.Agent)
	c.Storage.Merge(&overlay.Storage)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	profile, err := LookupProfile(c.Variant)
	if err != nil {
		return err
	}
	c.applyProfile(profile)

	if err := c.Scan.Finalize(scanEnv); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	if c.Classify.Input == "" {
		c.Classify.Input = c.Scan.Output
	}
	if err := c.Classify.Finalize(); err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	if err := c.Report.Finalize(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := c.Agent.Finalize(agentEnv); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.Variant == "" {
		c.Variant = VariantOllama
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvVariant); v != "" {
		c.Variant = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvCleandeskEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
