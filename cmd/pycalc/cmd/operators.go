package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List the registered operators",
	Long: `Lists every registered operator with its precedence and
associativity, sorted by symbol.`,
	RunE: runOperators,
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}

func runOperators(cmd *cobra.Command, args []string) error {
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tPRECEDENCE\tASSOCIATIVITY")
	for _, op := range engine.Registry().Operators() {
		assoc := "left"
		if op.RightAssoc {
			assoc = "right"
		}
		fmt.Fprintf(w, "%c\t%d\t%s\n", op.Symbol, op.Precedence, assoc)
	}
	return w.Flush()
}
