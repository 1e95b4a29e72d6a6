package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/reconcile-cli/internal/seniority"
)

var titleCmd = &cobra.Command{
	Use:   "title <job title>",
	Short: "Classify a job title into a seniority tier",
	Long: `Classify one job title into a seniority tier and show the rule
that produced it.

Examples:
  title "Chief Technology Officer"
  title Senior Manager, Procurement`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTitle,
}

func init() {
	rootCmd.AddCommand(titleCmd)
}

func runTitle(cmd *cobra.Command, args []string) error {
	res := seniority.Classify(strings.Join(args, " "))
	fmt.Printf("%s (%s)\n", res.Tier, res.Rationale)
	return nil
}
