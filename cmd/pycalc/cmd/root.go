package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc"
	pcconfig "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/config"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
	"github.com/AdithyaSuresh01/project-name-pycalc/internal/repl"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pycalc",
	Short: "PyCalc - simple command-line calculator",
	Long: `PyCalc is an interactive command-line calculator.

It evaluates arithmetic expressions over floating-point numbers with
correct operator precedence and associativity, keeps a history of the
session's results, and supports runtime-extensible binary operators.

Running pycalc without a subcommand starts the interactive REPL.

Subcommands:
  eval       - evaluate a single expression and exit
  operators  - list the registered operators
  tui        - start the full-screen terminal UI
  version    - show version information`,
	RunE: runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	logger := buildLogger(cfg)

	if cfg != nil && cfg.IsWatching() {
		cfg.OnChange(func(oldConfig, newConfig *pcconfig.Config) {
			logger.WithField("file", cfg.FilePath()).Info("Configuration file reloaded")
		})
		defer cfg.StopWatching()
	}

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		printError("failed to initialize engine", err)
		return err
	}
	defer engine.Close()

	showBanner := true
	if cfg != nil {
		showBanner = cfg.GetBool("repl.banner", true)
	}

	return repl.Run(repl.Config{
		Input:      os.Stdin,
		Output:     os.Stdout,
		Engine:     engine,
		Logger:     logger,
		ShowBanner: showBanner,
	})
}

// loadConfig loads the file named by --config; without the flag it
// falls back to config discovery. A missing config is not an error.
// A loaded file that sets config.watch = true is reopened with file
// watching enabled so edits during a session are picked up.
func loadConfig() (*pcconfig.Config, error) {
	cfg, err := loadConfigFile()
	if err != nil {
		return nil, err
	}

	if cfg != nil && cfg.FilePath() != "" && cfg.GetBool("config.watch", false) {
		return pcconfig.LoadWithOptions(cfg.FilePath(), pcconfig.LoadOptions{
			EnvPrefix: "PYCALC",
			Watch:     true,
		})
	}

	return cfg, nil
}

func loadConfigFile() (*pcconfig.Config, error) {
	if cfgFile != "" {
		return pcconfig.LoadWithOptions(cfgFile, pcconfig.LoadOptions{
			EnvPrefix: "PYCALC",
		})
	}

	opts := pcconfig.DefaultDiscoveryOptions()
	opts.EnvPrefix = "PYCALC"
	opts.Required = false
	return pcconfig.Discover(opts)
}

// buildLogger constructs the session logger from config and flags
func buildLogger(cfg *pcconfig.Config) *pclog.Logger {
	logger := pclog.New().WithName("pycalc")

	levelName := "info"
	formatName := "console"
	if cfg != nil {
		levelName = cfg.GetString("log.level", "info")
		formatName = cfg.GetString("log.format", "console")
	}
	if verbose {
		levelName = "debug"
	}

	if level, err := pclog.ParseLevel(levelName); err == nil {
		logger = logger.WithLevel(level)
	}
	if format, err := pclog.ParseFormat(formatName); err == nil {
		logger = logger.WithFormat(format)
	}

	return logger
}

// buildEngine constructs a calculation engine from config
func buildEngine(cfg *pcconfig.Config, logger *pclog.Logger) (*calc.Engine, error) {
	maxInput := 4096
	if cfg != nil {
		maxInput = cfg.GetInt("calc.max_input_length", 4096)
	}

	return calc.New(calc.Options{
		Logger:         logger,
		MaxInputLength: maxInput,
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
