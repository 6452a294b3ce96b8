package notes

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/cleandesk/pkg/formatting"
)

// Config holds folder scan parameters.
type Config struct {
	Root         string `toml:"root"`
	Output       string `toml:"output"`
	NotesFile    string `toml:"notes_file"`
	LocationFile string `toml:"location_file"`
	Location     *bool  `toml:"location"`
	MaxNoteSize  string `toml:"max_note_size"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Root         string
	Output       string
	NotesFile    string
	LocationFile string
	Location     string
	MaxNoteSize  string
}

// LocationEnabled reports whether rows are tagged with the employee location.
func (c *Config) LocationEnabled() bool {
	return c.Location != nil && *c.Location
}

// MaxNoteSizeBytes returns MaxNoteSize in bytes.
func (c *Config) MaxNoteSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxNoteSize)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Root != "" {
		c.Root = overlay.Root
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
	if overlay.NotesFile != "" {
		c.NotesFile = overlay.NotesFile
	}
	if overlay.LocationFile != "" {
		c.LocationFile = overlay.LocationFile
	}
	if overlay.Location != nil {
		v := *overlay.Location
		c.Location = &v
	}
	if overlay.MaxNoteSize != "" {
		c.MaxNoteSize = overlay.MaxNoteSize
	}
}

func (c *Config) loadDefaults() {
	if c.Output == "" {
		c.Output = "consolidated_cdnotes.csv"
	}
	if c.NotesFile == "" {
		c.NotesFile = "cdnotes.csv"
	}
	if c.LocationFile == "" {
		c.LocationFile = "wfboxfile.txt"
	}
	if c.Location == nil {
		off := false
		c.Location = &off
	}
	if c.MaxNoteSize == "" {
		c.MaxNoteSize = "10MB"
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

	set(env.Root, &c.Root)
	set(env.Output, &c.Output)
	set(env.NotesFile, &c.NotesFile)
	set(env.LocationFile, &c.LocationFile)
	set(env.MaxNoteSize, &c.MaxNoteSize)

	if env.Location != "" {
		if v := os.Getenv(env.Location); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Location = &b
			}
		}
	}
}

func (c *Config) validate() error {
	if c.NotesFile == "" {
		return fmt.Errorf("notes_file required")
	}
	if _, err := formatting.ParseBytes(c.MaxNoteSize); err != nil {
		return fmt.Errorf("invalid max_note_size: %w", err)
	}
	return nil
}
