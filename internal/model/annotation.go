package model

// MatchOutcome is the tri-state result of checking one master value
// against the picklist vocabulary.
type MatchOutcome string

const (
	MatchYes           MatchOutcome = "Yes"
	MatchNo            MatchOutcome = "No"
	MatchColumnMissing MatchOutcome = "Column Missing"
)

// MatchStatus grades how likely a company name and a domain refer to
// the same organization. Graded, never boolean.
type MatchStatus string

const (
	StatusLikelyMatch    MatchStatus = "Likely Match"
	StatusUnsure         MatchStatus = "Unsure – Please Check"
	StatusLikelyNotMatch MatchStatus = "Likely NOT Match"
)

// IdentityVerdict is the outcome of comparing one company name to one
// domain or email. Method identifies which heuristic stage fired.
type IdentityVerdict struct {
	Status MatchStatus `json:"status"`
	Score  int         `json:"score"`
	Method string      `json:"method"`
}

// Seniority is one of the fixed ordered seniority tiers.
type Seniority string

const (
	SeniorityCSuite  Seniority = "C Suite"
	SeniorityVP      Seniority = "VP"
	SeniorityHead    Seniority = "Head"
	SeniorityDir     Seniority = "Director"
	SeniorityManager Seniority = "Manager"
	SenioritySenior  Seniority = "Senior"
	SeniorityEntry   Seniority = "Entry"
)

// SeniorityResult pairs a tier with the rule that produced it.
type SeniorityResult struct {
	Tier      Seniority `json:"tier"`
	Rationale string    `json:"rationale"`
}

// Correction records that one master cell was overwritten with its
// canonical form. Row is the zero-based data-row index.
type Correction struct {
	Field string `json:"field"`
	Row   int    `json:"row"`
}

// CellMark is a stable per-cell signal for the presentation layer.
// The core emits marks; renderers decide how to draw them.
type CellMark int

const (
	MarkNone CellMark = iota
	MarkMatchYes
	MarkMatchNo
	MarkUnsure
	MarkCorrected
)
