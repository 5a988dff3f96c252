package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2022/pkg/buildinfo"
	"github.com/matzehuels/aoc2022/pkg/cache"
	"github.com/matzehuels/aoc2022/pkg/crane"
	"github.com/matzehuels/aoc2022/pkg/days"
	"github.com/matzehuels/aoc2022/pkg/observability"
	"github.com/matzehuels/aoc2022/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "aoc"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config

	configFile string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	cfg := defaultConfig()
	return &CLI{
		Logger: newLogger(w, level),
		Config: &cfg,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "aoc solves Advent of Code 2022 puzzles",
		Long:         `aoc runs the Advent of Code 2022 solvers against your puzzle inputs and caches the answers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Logger.Debug("loaded config", "version", buildinfo.Version, "commit", buildinfo.Commit, "input_dir", cfg.InputDir, "cache", cfg.Cache)

			hooks := observability.NewLogHooks(c.Logger)
			observability.SetSolverHooks(hooks)
			observability.SetCacheHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger, cmd.Name()))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/aoc/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.cratesCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Day 5 reads its diagram
// with the configured layout.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	reg, err := days.Registry(c.Config.Layout())
	if err != nil {
		return nil, err
	}
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, buildinfo.Version+":")
	return pipeline.NewRunner(reg, store, keyer, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || !c.Config.Cache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// variant returns the cache variant for day: answers for day 5 depend on the
// diagram layout.
func (c *CLI) variant(day int) string {
	l := c.Config.Layout()
	if day != 5 || l == crane.DefaultLayout {
		return ""
	}
	return fmt.Sprintf("slot%d-label%d", l.SlotWidth, l.LabelOffset)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/aoc/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
