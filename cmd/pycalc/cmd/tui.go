package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AdithyaSuresh01/project-name-pycalc/internal/tui/calculator"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"ui"},
	Short:   "Start the full-screen terminal UI",
	Long: `Starts the full-screen PyCalc terminal UI.

The TUI evaluates the same expressions as the plain REPL and honors
the same meta-commands (history, clear, quit, exit).

Key bindings:
  Enter       evaluate expression
  ↑/↓         walk input history
  PgUp/PgDn   scroll results
  Ctrl+L      clear the screen
  Esc/Ctrl+C  quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	logger := buildLogger(cfg)
	engine, err := buildEngine(cfg, logger)
	if err != nil {
		printError("failed to initialize engine", err)
		return err
	}
	defer engine.Close()

	return calculator.Run(calculator.Config{
		Engine: engine,
		Logger: logger,
	})
}
