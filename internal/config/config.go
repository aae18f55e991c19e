// Package config loads battletext settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for a config file when --config is not given.
const DefaultPath = ".battletext/config.yaml"

// Perspective values accepted in config and on the command line.
const (
	PerspectiveP1   = "0"
	PerspectiveP2   = "1"
	PerspectiveBoth = "both"
)

// Output formats.
const (
	FormatPlain    = "plain"
	FormatMarkdown = "markdown"
	FormatANSI     = "ansi"
)

// ValidFormats lists all supported output formats.
var ValidFormats = []string{FormatPlain, FormatMarkdown, FormatANSI}

// Config holds all battletext configuration.
type Config struct {
	// Templates is an optional YAML overlay merged over the embedded store.
	Templates string `yaml:"templates" json:"templates,omitempty"`

	// Perspective is "0", "1" or "both".
	Perspective string `yaml:"perspective" json:"perspective,omitempty"`

	// Generation pins a mechanics generation; gen lines in the log are then ignored.
	// Zero means "take it from the log".
	Generation int `yaml:"generation" json:"generation,omitempty"`

	Format string `yaml:"format" json:"format,omitempty"`

	Output  OutputConfig  `yaml:"output" json:"output,omitempty"`
	Follow  FollowConfig  `yaml:"follow" json:"follow,omitempty"`
	Logging LoggingConfig `yaml:"logging" json:"logging,omitempty"`
}

// OutputConfig configures the presenter.
type OutputConfig struct {
	WordWrap int    `yaml:"word_wrap" json:"word_wrap,omitempty"`
	Style    string `yaml:"style" json:"style,omitempty"` // glamour standard style: dark, light, notty
}

// FollowConfig configures live tailing.
type FollowConfig struct {
	// PollInterval is a fallback re-read interval for filesystems without change events.
	PollInterval string `yaml:"poll_interval" json:"poll_interval,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Perspective: PerspectiveP1,
		Format:      FormatPlain,
		Output: OutputConfig{
			WordWrap: 100,
			Style:    "dark",
		},
		Follow: FollowConfig{
			PollInterval: "2s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Dir:    ".battletext/logs",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("BATTLETEXT_TEMPLATES"); path != "" {
		c.Templates = path
	}
	if p := os.Getenv("BATTLETEXT_PERSPECTIVE"); p != "" {
		c.Perspective = p
	}
	if g := os.Getenv("BATTLETEXT_GENERATION"); g != "" {
		// Non-numeric values are ignored.
		if n, err := strconv.Atoi(g); err == nil {
			c.Generation = n
		}
	}
	if f := os.Getenv("BATTLETEXT_FORMAT"); f != "" {
		c.Format = strings.ToLower(f)
	}
	if d := os.Getenv("BATTLETEXT_DEBUG"); d != "" {
		if on, err := strconv.ParseBool(d); err == nil {
			c.Logging.DebugMode = on
		}
	}
}

// GetPollInterval returns the follow poll interval, falling back to 2s when unset or malformed.
func (c *Config) GetPollInterval() time.Duration {
	d, err := time.ParseDuration(c.Follow.PollInterval)
	if err != nil || d <= 0 {
		return 2 * time.Second
	}
	return d
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Perspective {
	case PerspectiveP1, PerspectiveP2, PerspectiveBoth:
	default:
		errs = append(errs, fmt.Errorf("invalid perspective: %q (valid: 0, 1, both)", c.Perspective))
	}

	validFormat := false
	for _, f := range ValidFormats {
		if c.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		errs = append(errs, fmt.Errorf("invalid format: %q (valid: %v)", c.Format, ValidFormats))
	}

	if c.Generation < 0 {
		errs = append(errs, fmt.Errorf("invalid generation: %d", c.Generation))
	}

	if c.Output.WordWrap < 0 {
		errs = append(errs, fmt.Errorf("invalid word wrap: %d", c.Output.WordWrap))
	}

	if c.Follow.PollInterval != "" {
		if _, err := time.ParseDuration(c.Follow.PollInterval); err != nil {
			errs = append(errs, fmt.Errorf("invalid follow poll interval: %w", err))
		}
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
