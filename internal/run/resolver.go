package run

import "github.com/sells-group/reconcile-cli/internal/model"

// Resolve tries each candidate column name in order against the
// table's header and returns the index of the first one present.
// Matching is case-insensitive. ok is false when no candidate exists,
// leaving the role unresolved.
func Resolve(t *model.Table, candidates []string) (idx int, ok bool) {
	for _, name := range candidates {
		if i := t.ColumnIndex(name); i >= 0 {
			return i, true
		}
	}
	return -1, false
}
