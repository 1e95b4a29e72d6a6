// Package dataset loads tabular input files (xlsx, csv) into in-memory
// tables addressable by column name.
package dataset

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/reconcile-cli/internal/model"
)

// Options configures table loading.
type Options struct {
	SheetIndex int    // xlsx only; default 0
	SheetName  string // xlsx only; if set, overrides SheetIndex
	Delimiter  rune   // csv only; default ','
}

// Load reads a tabular file into a Table, dispatching on extension.
// The first row is the header. An input with no rows at all is a
// structural failure; a header-only input yields an empty table.
func Load(path string, opts Options) (*model.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadXLSX(path, opts)
	case ".csv":
		return loadCSV(path, opts)
	default:
		return nil, eris.Errorf("dataset: unsupported input format %q", filepath.Ext(path))
	}
}

func tableFromRows(path string, rows [][]string) (*model.Table, error) {
	if len(rows) == 0 {
		return nil, eris.Errorf("dataset: %s: no header row", path)
	}
	return model.NewTable(rows[0], rows[1:]), nil
}
