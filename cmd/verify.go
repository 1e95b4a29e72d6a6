package main

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/reconcile-cli/internal/identity"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <company> <domain-or-email>",
	Short: "Score one company name against one domain or email",
	Long: `Score the likelihood that a company name and a domain, URL, or
email address refer to the same organization.

Examples:
  verify "Tesco PLC" tesco.com
  verify "International Business Machines" https://www.ibm.com/uk
  verify "HSBC Holdings" jane.doe@hsbc.com --json`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().Bool("json", false, "emit the verdict as JSON")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	if err := identity.ValidateConfig(cfg.Identity); err != nil {
		return err
	}

	verdict := identity.NewMatcher(cfg.Identity).Score(args[0], args[1])

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out, err := json.MarshalIndent(verdict, "", "  ")
		if err != nil {
			return eris.Wrap(err, "verify: marshal verdict")
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("%s (score %d, %s)\n", verdict.Status, verdict.Score, verdict.Method)
	return nil
}
