package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/reconcile-cli/internal/dataset"
	"github.com/sells-group/reconcile-cli/internal/identity"
	"github.com/sells-group/reconcile-cli/internal/model"
	"github.com/sells-group/reconcile-cli/internal/report"
	"github.com/sells-group/reconcile-cli/internal/run"
)

var checkCmd = &cobra.Command{
	Use:   "check <master> <picklist>",
	Short: "Check a master sheet against a picklist",
	Long: `Check a master lead sheet against a canonical picklist workbook.

Runs three passes over the master records: exact reconciliation of the
configured field pairs (matched values are rewritten to the picklist's
canonical form), seniority classification of the job-title column, and
company vs domain identity matching. The annotated result is written as
a styled workbook with one appended column per check.

Examples:
  # Default output path next to the master file
  check leads.xlsx picklist.xlsx

  # Explicit output, csv master input
  check leads.csv picklist.xlsx --output checked.xlsx

  # Pick worksheets by name
  check leads.xlsx picklist.xlsx --master-sheet-name "Q3 Leads" --picklist-sheet-name Values`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.String("output", "", `output file path (default: "<master stem> - Full_Check_Results.xlsx")`)
	f.Int("master-sheet", 0, "master worksheet index")
	f.String("master-sheet-name", "", "master worksheet name (overrides index)")
	f.Int("picklist-sheet", 0, "picklist worksheet index")
	f.String("picklist-sheet-name", "", "picklist worksheet name (overrides index)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := identity.ValidateConfig(cfg.Identity); err != nil {
		return err
	}

	masterPath, picklistPath := args[0], args[1]
	f := cmd.Flags()
	masterSheet, _ := f.GetInt("master-sheet")
	masterSheetName, _ := f.GetString("master-sheet-name")
	picklistSheet, _ := f.GetInt("picklist-sheet")
	picklistSheetName, _ := f.GetString("picklist-sheet-name")

	log := zap.L().With(zap.String("command", "check"))

	var master, picklist *model.Table
	g, _ := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		t, err := dataset.Load(masterPath, dataset.Options{
			SheetIndex: masterSheet,
			SheetName:  masterSheetName,
		})
		if err != nil {
			return eris.Wrap(err, "check: load master")
		}
		master = t
		return nil
	})
	g.Go(func() error {
		t, err := dataset.Load(picklistPath, dataset.Options{
			SheetIndex: picklistSheet,
			SheetName:  picklistSheetName,
		})
		if err != nil {
			return eris.Wrap(err, "check: load picklist")
		}
		picklist = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("check: inputs loaded",
		zap.String("master", masterPath),
		zap.Int("master_rows", master.NumRows()),
		zap.String("picklist", picklistPath),
		zap.Int("picklist_rows", picklist.NumRows()))

	out := run.New(cfg).Run(master, picklist)

	outPath, _ := f.GetString("output")
	if outPath == "" {
		outPath = report.DefaultOutputPath(masterPath, cfg.Output.Suffix)
	}
	if err := report.Write(outPath, out.Table, out.Marks, out.AppendedFrom); err != nil {
		return err
	}

	log.Info("check: results written",
		zap.String("run_id", out.RunID),
		zap.String("path", outPath))
	fmt.Printf("Wrote %s: %d rows, %d corrections, %d likely matches, %d unsure, %d likely non-matches\n",
		outPath, out.Summary.Records, out.Summary.Corrections,
		out.Summary.LikelyMatch, out.Summary.Unsure, out.Summary.LikelyNotMatch)

	return nil
}
