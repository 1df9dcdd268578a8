package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var evalShowDuration bool

var evalCmd = &cobra.Command{
	Use:   "eval \"EXPRESSION\"",
	Short: "Evaluate a single expression and exit",
	Long: `Evaluates one arithmetic expression and prints the result.

Examples:
  pycalc eval "1 + 2 * 3"
  pycalc eval "(1 + 2) ^ 3" --duration`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalShowDuration, "duration", false,
		"also print the evaluation duration")
}

func runEval(cmd *cobra.Command, args []string) error {
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

	result, err := engine.EvaluateString(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		// Error already reported; keep cobra from printing usage
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return err
	}

	fmt.Println(result.Formatted)
	if evalShowDuration {
		fmt.Printf("took %s\n", result.Duration)
	}
	return nil
}
