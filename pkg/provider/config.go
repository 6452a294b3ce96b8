package provider

import (
	"fmt"
	"os"
	"slices"
	"time"
)

// Supported provider names.
const (
	NameOllama = "ollama"
	NameGemini = "gemini"
)

var names = []string{NameOllama, NameGemini}

var defaults = map[string]Config{
	NameOllama: {BaseURL: "http://localhost:11434", Model: "llama3.2-vision"},
	NameGemini: {BaseURL: "https://generativelanguage.googleapis.com/", Model: "gemini-1.5-flash"},
}

// Config holds LLM endpoint connection parameters.
type Config struct {
	Name    string `toml:"name"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Token   string `toml:"token"`
	Timeout string `toml:"timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Name    string
	BaseURL string
	Model   string
	Token   string
	Timeout string
}

// TimeoutDuration returns Timeout as a time.Duration. Zero disables the client timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies environment variable overrides, provider defaults, and validation.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Name != "" {
		c.Name = overlay.Name
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadDefaults() {
	if c.Name == "" {
		c.Name = NameOllama
	}
	d := defaults[c.Name]
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Model == "" {
		c.Model = d.Model
	}
	if c.Timeout == "" {
		c.Timeout = "0s"
	}
}

func (c *Config) loadEnv(env *Env) {
	set := func(name string, field *string) {
		if name == "" {
			return
		}
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}

	set(env.Name, &c.Name)
	set(env.BaseURL, &c.BaseURL)
	set(env.Model, &c.Model)
	set(env.Token, &c.Token)
	set(env.Timeout, &c.Timeout)
}

func (c *Config) validate() error {
	if !slices.Contains(names, c.Name) {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Name)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if d, err := time.ParseDuration(c.Timeout); err != nil || d < 0 {
		return fmt.Errorf("invalid timeout: %q", c.Timeout)
	}
	return nil
}
