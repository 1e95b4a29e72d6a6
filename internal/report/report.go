// Package report writes the annotated output table to disk: a styled
// xlsx workbook with per-cell fills, or a plain csv.
package report

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/reconcile-cli/internal/model"
)

// CellMarker supplies the visual signal for each output cell.
type CellMarker interface {
	Get(row, col int) model.CellMark
}

// noMarks renders every cell unmarked.
type noMarks struct{}

func (noMarks) Get(int, int) model.CellMark { return model.MarkNone }

// Write emits the table to path, dispatching on extension. csv output
// drops the fill styling; the cell values carry the same information.
func Write(path string, table *model.Table, marks CellMarker, appendedFrom int) error {
	if marks == nil {
		marks = noMarks{}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return writeXLSX(path, table, marks, appendedFrom)
	case ".csv":
		return writeCSV(path, table)
	default:
		return eris.Errorf("report: unsupported output format %q", filepath.Ext(path))
	}
}

// DefaultOutputPath derives the output path from the master input
// path: same directory, master stem plus suffix, xlsx extension.
func DefaultOutputPath(masterPath, suffix string) string {
	dir := filepath.Dir(masterPath)
	base := filepath.Base(masterPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix+".xlsx")
}
