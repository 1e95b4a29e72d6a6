// Package reconcile matches master values against a canonical picklist
// vocabulary and normalizes them in place when matched.
package reconcile

import (
	"strings"

	"github.com/sells-group/reconcile-cli/internal/config"
	"github.com/sells-group/reconcile-cli/internal/model"
)

// Vocabulary is the per-field canonical lookup built from one picklist
// column: folded trimmed value → original trimmed value. Immutable for
// the duration of a run.
type Vocabulary map[string]string

// BuildVocabulary collects the canonical forms of one picklist column.
// Empty cells are skipped.
func BuildVocabulary(picklist *model.Table, column string) Vocabulary {
	idx := picklist.ColumnIndex(column)
	if idx < 0 {
		return nil
	}
	vocab := make(Vocabulary)
	for i := range picklist.Rows {
		v := strings.TrimSpace(picklist.Cell(i, idx))
		if v == "" {
			continue
		}
		vocab[model.Fold(v)] = v
	}
	return vocab
}

// Lookup resolves a raw master value to its canonical form. The
// field's equivalence table (if any) is consulted first; when the
// mapped form is absent from the vocabulary the raw form is retried,
// so an alias table can never lose a direct hit.
func (v Vocabulary) Lookup(raw string, equivalence map[string]string) (string, bool) {
	key := model.Fold(strings.TrimSpace(raw))
	if alias, ok := equivalence[key]; ok {
		if canonical, hit := v[model.Fold(strings.TrimSpace(alias))]; hit {
			return canonical, true
		}
	}
	canonical, hit := v[key]
	return canonical, hit
}

// FieldResult holds the per-row outcomes of one configured field pair.
type FieldResult struct {
	Pair     config.FieldPair
	Outcomes []model.MatchOutcome
}

// Result is the output of a reconciliation pass over all field pairs.
type Result struct {
	Fields      []FieldResult
	Corrections []model.Correction
}

// Run checks each configured field pair independently. On a hit the
// master value is overwritten with the canonical form: reconciliation
// both reports and fixes. A pair whose column is absent on either side
// yields ColumnMissing for every record and leaves values untouched.
func Run(master, picklist *model.Table, pairs []config.FieldPair) *Result {
	res := &Result{}

	for _, pair := range pairs {
		fr := FieldResult{
			Pair:     pair,
			Outcomes: make([]model.MatchOutcome, master.NumRows()),
		}

		masterIdx := master.ColumnIndex(pair.Master)
		vocab := BuildVocabulary(picklist, pair.Picklist)
		if masterIdx < 0 || vocab == nil {
			for i := range fr.Outcomes {
				fr.Outcomes[i] = model.MatchColumnMissing
			}
			res.Fields = append(res.Fields, fr)
			continue
		}

		equivalence := equivalenceFor(pair.Master)
		for i := range master.Rows {
			raw := master.Cell(i, masterIdx)
			canonical, hit := vocab.Lookup(raw, equivalence)
			if !hit {
				fr.Outcomes[i] = model.MatchNo
				continue
			}
			fr.Outcomes[i] = model.MatchYes
			master.SetCell(i, masterIdx, canonical)
			if canonical != raw {
				res.Corrections = append(res.Corrections, model.Correction{Field: pair.Master, Row: i})
			}
		}

		res.Fields = append(res.Fields, fr)
	}

	return res
}
