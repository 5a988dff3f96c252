package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/aoc2022/pkg/crane"
	apperr "github.com/matzehuels/aoc2022/pkg/errors"
)

// Config is the user configuration read from config.toml.
//
//	input_dir = "~/aoc/inputs"
//	cache     = true
//	cache_ttl = "720h"
//
//	[crates]
//	slot_width   = 4
//	label_offset = 1
//	policy       = "single"
type Config struct {
	InputDir string       `toml:"input_dir"`
	Cache    bool         `toml:"cache"`
	CacheTTL duration     `toml:"cache_ttl"`
	Crates   CratesConfig `toml:"crates"`
}

// CratesConfig holds the defaults for day 5 and the crates command.
type CratesConfig struct {
	SlotWidth   int    `toml:"slot_width"`
	LabelOffset int    `toml:"label_offset"`
	Policy      string `toml:"policy"`
}

// duration decodes TOML strings such as "90m" into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultConfig() Config {
	return Config{
		InputDir: "inputs",
		Cache:    true,
		Crates: CratesConfig{
			SlotWidth:   crane.DefaultLayout.SlotWidth,
			LabelOffset: crane.DefaultLayout.LabelOffset,
			Policy:      crane.SingleCrate.String(),
		},
	}
}

// Layout returns the diagram layout described by the crates section.
func (c *Config) Layout() crane.Layout {
	l := crane.DefaultLayout
	l.SlotWidth = c.Crates.SlotWidth
	l.LabelOffset = c.Crates.LabelOffset
	return l
}

// Validate checks values the decoder cannot.
func (c *Config) Validate() error {
	if err := c.Layout().Validate(); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "crates")
	}
	if _, err := crane.ParsePolicy(c.Crates.Policy); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "crates.policy")
	}
	if c.CacheTTL.Duration < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache_ttl must not be negative")
	}
	return nil
}

// loadConfig reads the config file at path on top of the defaults. An empty
// path means the default location, where a missing file is not an error.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return &cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, apperr.New(apperr.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.InputDir = expandHome(cfg.InputDir)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// configPath returns the config file location using XDG standard
// (~/.config/aoc/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
