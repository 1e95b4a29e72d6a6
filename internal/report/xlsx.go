package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/reconcile-cli/internal/model"
)

// ARGB fills for each cell mark. Appended column headers share the
// yellow of unsure cells so the new columns stand out.
const (
	fillGreen  = "FFC6EFCE"
	fillRed    = "FFFFC7CE"
	fillYellow = "FFFFFF00"
	fillBlue   = "FFADD8E6"
)

func writeXLSX(path string, table *model.Table, marks CellMarker, appendedFrom int) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Results")
	if err != nil {
		return eris.Wrap(err, "report: add sheet")
	}

	header := sheet.AddRow()
	for i, h := range table.Header {
		cell := header.AddCell()
		cell.SetString(h)
		if i >= appendedFrom {
			applyFill(cell, fillYellow)
		}
	}

	for r := range table.Rows {
		row := sheet.AddRow()
		for c := range table.Header {
			cell := row.AddCell()
			cell.SetString(table.Cell(r, c))
			if fill := fillForMark(marks.Get(r, c)); fill != "" {
				applyFill(cell, fill)
			}
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "report: save xlsx")
	}
	return nil
}

func fillForMark(mark model.CellMark) string {
	switch mark {
	case model.MarkMatchYes:
		return fillGreen
	case model.MarkMatchNo:
		return fillRed
	case model.MarkUnsure:
		return fillYellow
	case model.MarkCorrected:
		return fillBlue
	default:
		return ""
	}
}

func applyFill(cell *xlsx.Cell, argb string) {
	style := xlsx.NewStyle()
	style.Fill = *xlsx.NewFill("solid", argb, argb)
	style.ApplyFill = true
	cell.SetStyle(style)
}
