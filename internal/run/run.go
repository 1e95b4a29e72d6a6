// Package run orchestrates a full reconciliation pass over a master
// table: exact field reconciliation against the picklist, seniority
// classification, and company vs domain identity matching. The master
// table is annotated in place with one appended column per check.
package run

import (
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/reconcile-cli/internal/config"
	"github.com/sells-group/reconcile-cli/internal/identity"
	"github.com/sells-group/reconcile-cli/internal/model"
	"github.com/sells-group/reconcile-cli/internal/reconcile"
	"github.com/sells-group/reconcile-cli/internal/seniority"
)

// Appended column names.
const (
	ColParsedSeniority   = "Parsed_Seniority"
	ColSeniorityLogic    = "Seniority_Logic"
	ColSeniorityMatch    = "Seniority_Match"
	ColDomainCheckStatus = "Domain_Check_Status"
	ColDomainCheckScore  = "Domain_Check_Score"
	ColDomainCheckReason = "Domain_Check_Reason"

	matchColumnPrefix = "Match_"
)

// Sentinel cell values for features whose input columns are absent.
const (
	sentinelNoTitleColumn   = "jobtitle column not found"
	sentinelNoIdentityInput = "No company/domain columns found"
	sentinelPicklistMissing = "Picklist Missing"
)

// CellRef addresses one cell of the annotated output table.
type CellRef struct {
	Row, Col int
}

// Marks maps cells to the visual signal the presentation layer should
// render for them.
type Marks map[CellRef]model.CellMark

func (m Marks) set(row, col int, mark model.CellMark) {
	if mark == model.MarkNone {
		return
	}
	m[CellRef{Row: row, Col: col}] = mark
}

// Get returns the mark for a cell, MarkNone when unmarked.
func (m Marks) Get(row, col int) model.CellMark {
	return m[CellRef{Row: row, Col: col}]
}

// Summary counts the outcomes of one run.
type Summary struct {
	Records        int `json:"records"`
	Corrections    int `json:"corrections"`
	LikelyMatch    int `json:"likely_match"`
	Unsure         int `json:"unsure"`
	LikelyNotMatch int `json:"likely_not_match"`
}

// Outcome is the result of one reconciliation run. Table aliases the
// master table passed in, now annotated.
type Outcome struct {
	RunID        string
	Table        *model.Table
	Marks        Marks
	Corrections  []model.Correction
	AppendedFrom int // index of the first appended column
	Summary      Summary
}

// Runner executes reconciliation runs under one configuration.
type Runner struct {
	cfg     *config.Config
	matcher *identity.Matcher
}

// New creates a Runner. The identity matcher is built once and reused
// across runs.
func New(cfg *config.Config) *Runner {
	return &Runner{
		cfg:     cfg,
		matcher: identity.NewMatcher(cfg.Identity),
	}
}

// Run annotates the master table against the picklist. Per-record
// problems degrade to sentinel cell values; Run itself never fails.
func (r *Runner) Run(master, picklist *model.Table) *Outcome {
	out := &Outcome{
		RunID:        uuid.NewString(),
		Table:        master,
		Marks:        make(Marks),
		AppendedFrom: len(master.Header),
	}
	out.Summary.Records = master.NumRows()

	prog := newProgressLogger(out.RunID)
	zap.L().Info("run: starting",
		zap.String("run_id", out.RunID),
		zap.Int("rows", master.NumRows()))

	prog.pass("reconcile")
	r.fieldPass(master, picklist, out)

	prog.pass("seniority")
	r.seniorityPass(master, picklist, out, prog)

	prog.pass("identity")
	r.identityPass(master, out, prog)

	out.Summary.Corrections = len(out.Corrections)
	zap.L().Info("run: finished",
		zap.String("run_id", out.RunID),
		zap.Int("corrections", out.Summary.Corrections),
		zap.Int("likely_match", out.Summary.LikelyMatch),
		zap.Int("unsure", out.Summary.Unsure),
		zap.Int("likely_not_match", out.Summary.LikelyNotMatch))

	return out
}

// fieldPass reconciles the configured field pairs and appends one
// Match_<field> column per pair. Corrected master cells are marked
// before any columns shift the layout.
func (r *Runner) fieldPass(master, picklist *model.Table, out *Outcome) {
	pairs := config.ParseFieldPairs(r.cfg.Reconcile.FieldPairs)
	res := reconcile.Run(master, picklist, pairs)

	out.Corrections = res.Corrections
	for _, c := range res.Corrections {
		out.Marks.set(c.Row, master.ColumnIndex(c.Field), model.MarkCorrected)
	}

	for _, fr := range res.Fields {
		vals := make([]string, len(fr.Outcomes))
		for i, o := range fr.Outcomes {
			vals[i] = string(o)
		}
		col := master.AddColumn(matchColumnPrefix+fr.Pair.Master, vals)
		for i, o := range fr.Outcomes {
			out.Marks.set(i, col, markForOutcome(o))
		}
	}
}

// seniorityPass classifies the detected job-title column and
// cross-checks the parsed tier against the picklist's seniority
// vocabulary when that column exists.
func (r *Runner) seniorityPass(master, picklist *model.Table, out *Outcome, prog *progressLogger) {
	n := master.NumRows()
	tiers := make([]string, n)
	logic := make([]string, n)

	titleIdx, titleOK := Resolve(master, r.cfg.Columns.JobTitle)
	if titleOK {
		for i := 0; i < n; i++ {
			res := seniority.Classify(master.Cell(i, titleIdx))
			tiers[i] = string(res.Tier)
			logic[i] = res.Rationale
			prog.row("seniority", i, n)
		}
	} else {
		zap.L().Warn("run: no job title column detected",
			zap.String("run_id", out.RunID),
			zap.Strings("candidates", r.cfg.Columns.JobTitle))
		for i := range logic {
			logic[i] = sentinelNoTitleColumn
		}
	}

	tierCol := master.AddColumn(ColParsedSeniority, tiers)
	logicCol := master.AddColumn(ColSeniorityLogic, logic)
	if !titleOK {
		for i := 0; i < n; i++ {
			out.Marks.set(i, tierCol, model.MarkUnsure)
			out.Marks.set(i, logicCol, model.MarkUnsure)
		}
	}

	vocab := reconcile.BuildVocabulary(picklist, r.cfg.Reconcile.SeniorityColumn)
	match := make([]string, n)
	switch {
	case vocab == nil:
		for i := range match {
			match[i] = sentinelPicklistMissing
		}
	case !titleOK:
		for i := range match {
			match[i] = string(model.MatchColumnMissing)
		}
	default:
		for i := 0; i < n; i++ {
			if _, hit := vocab.Lookup(tiers[i], nil); hit {
				match[i] = string(model.MatchYes)
			} else {
				match[i] = string(model.MatchNo)
			}
		}
	}

	matchCol := master.AddColumn(ColSeniorityMatch, match)
	for i, v := range match {
		switch v {
		case string(model.MatchYes):
			out.Marks.set(i, matchCol, model.MarkMatchYes)
		case string(model.MatchNo):
			out.Marks.set(i, matchCol, model.MarkMatchNo)
		default:
			out.Marks.set(i, matchCol, model.MarkUnsure)
		}
	}
}

// identityPass scores each record's company name against its domain
// or email column. Candidate order in the config puts website ahead
// of the generic domain and email columns.
func (r *Runner) identityPass(master *model.Table, out *Outcome, prog *progressLogger) {
	n := master.NumRows()
	statuses := make([]string, n)
	scores := make([]string, n)
	reasons := make([]string, n)

	companyIdx, companyOK := Resolve(master, r.cfg.Columns.Company)
	domainIdx, domainOK := Resolve(master, r.cfg.Columns.Domain)

	if companyOK && domainOK {
		for i := 0; i < n; i++ {
			v := r.matcher.Score(master.Cell(i, companyIdx), master.Cell(i, domainIdx))
			statuses[i] = string(v.Status)
			scores[i] = strconv.Itoa(v.Score)
			reasons[i] = v.Method
			switch v.Status {
			case model.StatusLikelyMatch:
				out.Summary.LikelyMatch++
			case model.StatusLikelyNotMatch:
				out.Summary.LikelyNotMatch++
			default:
				out.Summary.Unsure++
			}
			prog.row("identity", i, n)
		}
	} else {
		zap.L().Warn("run: no company/domain columns detected",
			zap.String("run_id", out.RunID),
			zap.Bool("company", companyOK),
			zap.Bool("domain", domainOK))
		for i := range statuses {
			statuses[i] = sentinelNoIdentityInput
		}
	}

	statusCol := master.AddColumn(ColDomainCheckStatus, statuses)
	master.AddColumn(ColDomainCheckScore, scores)
	master.AddColumn(ColDomainCheckReason, reasons)

	for i, s := range statuses {
		switch s {
		case string(model.StatusLikelyMatch):
			out.Marks.set(i, statusCol, model.MarkMatchYes)
		case string(model.StatusLikelyNotMatch):
			out.Marks.set(i, statusCol, model.MarkMatchNo)
		default:
			out.Marks.set(i, statusCol, model.MarkUnsure)
		}
	}
}

func markForOutcome(o model.MatchOutcome) model.CellMark {
	switch o {
	case model.MatchYes:
		return model.MarkMatchYes
	case model.MatchNo:
		return model.MarkMatchNo
	default:
		return model.MarkUnsure
	}
}
