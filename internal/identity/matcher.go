// Package identity scores the likelihood that a company name and a
// domain or email address refer to the same organization.
package identity

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/sells-group/reconcile-cli/internal/config"
	"github.com/sells-group/reconcile-cli/internal/model"
	"github.com/sells-group/reconcile-cli/internal/normalize"
)

// genericLabels are domain labels too short or common to carry any
// evidence about the organization behind them.
var genericLabels = map[string]struct{}{
	"net": {}, "web": {}, "data": {}, "info": {}, "biz": {}, "pro": {}, "it": {},
}

// industryTerms are generic industry words; overlap on one of these is
// weak evidence and must be corroborated by partial fuzzy similarity.
var industryTerms = []string{
	"energy", "power", "pharma", "bank", "group",
	"telecom", "systems", "media", "health", "tech",
}

// comparison is the immutable context the heuristic stages run over.
type comparison struct {
	rawCompany string
	company    string // normalized company name
	label      string // domain label, alphanumerics only, alias-resolved
	origLabel  string // label as extracted, before alias resolution
	aliased    bool   // label came through the brand-alias table
}

// stage inspects a comparison and either returns a definitive verdict
// or passes (ok=false) to the next stage.
type stage func(m *Matcher, c comparison) (v model.IdentityVerdict, ok bool)

// Matcher runs the ordered heuristic cascade. Cheap, high-precision
// checks run before the fuzzy fallback so easy cases never pay the
// cost or risk of fuzzy mismatches.
type Matcher struct {
	cfg     config.IdentityConfig
	aliases map[string]string
	stages  []stage
}

// NewMatcher creates a Matcher with the given thresholds and the
// built-in brand-alias table.
func NewMatcher(cfg config.IdentityConfig) *Matcher {
	return &Matcher{
		cfg:     cfg,
		aliases: brandAliases,
		stages: []stage{
			(*Matcher).genericGuard,
			(*Matcher).containment,
			(*Matcher).acronym,
			(*Matcher).shortLabel,
			(*Matcher).industryTerm,
			(*Matcher).fuzzyFallback,
		},
	}
}

// Score compares a company name against a domain, URL, or email
// address and returns a graded verdict. It never fails: missing or
// unusable input degrades to an Unsure verdict.
func (m *Matcher) Score(company, domainOrEmail string) model.IdentityVerdict {
	c := normalize.Name(company)
	label := m.extractLabel(domainOrEmail)

	if c == "" || label == "" {
		return model.IdentityVerdict{Status: model.StatusUnsure, Score: 0, Method: "missing input"}
	}

	cmp := comparison{rawCompany: company, company: c, label: label, origLabel: label}

	// Alias resolution rewrites the label before the stages see it.
	// The original label is kept so containment can still catch the
	// case where the company name already is the brand.
	if full, ok := m.aliases[label]; ok {
		cmp.label = normalize.Despace(normalize.Name(full))
		cmp.aliased = true
	}

	for _, s := range m.stages {
		if v, done := s(m, cmp); done {
			return v
		}
	}
	// The fuzzy fallback always decides; this is unreachable.
	return model.IdentityVerdict{Status: model.StatusUnsure, Score: 0, Method: "undecided"}
}

// extractLabel reduces a URL, bare domain, or email address to a bare
// alphanumeric domain label.
func (m *Matcher) extractLabel(value string) string {
	v := strings.TrimSpace(value)
	if strings.ContainsRune(v, '@') {
		v = normalize.EmailDomain(v)
	}
	return normalize.StripNonAlphanumeric(normalize.Domain(v))
}

// genericGuard stops on labels too short or generic to be evidentiary.
// Aliased labels already resolved to a full trade name and pass through.
func (m *Matcher) genericGuard(c comparison) (model.IdentityVerdict, bool) {
	if c.aliased {
		return model.IdentityVerdict{}, false
	}
	if _, generic := genericLabels[c.label]; generic || len(c.label) < m.cfg.MinLabelLen {
		return model.IdentityVerdict{Status: model.StatusUnsure, Score: 0, Method: "generic"}, true
	}
	return model.IdentityVerdict{}, false
}

// shortLabel handles labels too short for fuzzy signal: if nearly all
// of the label's distinct characters appear in the company name, that is the
// only reliable positive test at this length.
func (m *Matcher) shortLabel(c comparison) (model.IdentityVerdict, bool) {
	if len(c.label) > m.cfg.ShortLabelMax {
		return model.IdentityVerdict{}, false
	}
	despaced := normalize.Despace(c.company)
	seen := make(map[rune]bool, len(c.label))
	hits := 0
	for _, r := range c.label {
		if seen[r] {
			continue
		}
		seen[r] = true
		if strings.ContainsRune(despaced, r) {
			hits++
		}
	}
	if hits >= len(seen)-1 && hits >= 2 {
		return model.IdentityVerdict{Status: model.StatusLikelyMatch, Score: 90, Method: "short domain/alias pattern"}, true
	}
	return model.IdentityVerdict{}, false
}

// containment is the strongest signal: one despaced string inside the
// other.
func (m *Matcher) containment(c comparison) (model.IdentityVerdict, bool) {
	despaced := normalize.Despace(c.company)
	if despaced == "" {
		return model.IdentityVerdict{}, false
	}
	if strings.Contains(despaced, c.label) || strings.Contains(c.label, despaced) {
		return model.IdentityVerdict{Status: model.StatusLikelyMatch, Score: 100, Method: "direct containment"}, true
	}
	if c.aliased && (strings.Contains(despaced, c.origLabel) || strings.Contains(c.origLabel, despaced)) {
		return model.IdentityVerdict{Status: model.StatusLikelyMatch, Score: 100, Method: "direct containment"}, true
	}
	return model.IdentityVerdict{}, false
}

// acronym matches the label against the initials of the raw company
// name. Two-letter acronyms collide too easily and are skipped.
func (m *Matcher) acronym(c comparison) (model.IdentityVerdict, bool) {
	acr := normalize.Acronym(c.rawCompany)
	if len(acr) < 3 {
		return model.IdentityVerdict{}, false
	}
	if c.label == acr || strings.HasPrefix(c.label, acr) {
		return model.IdentityVerdict{Status: model.StatusLikelyMatch, Score: 95, Method: "acronym"}, true
	}
	return model.IdentityVerdict{}, false
}

// industryTerm promotes pairs that share a generic industry word,
// but only when partial fuzzy similarity corroborates the overlap.
func (m *Matcher) industryTerm(c comparison) (model.IdentityVerdict, bool) {
	shared := false
	for _, term := range industryTerms {
		if strings.Contains(c.company, term) && strings.Contains(c.label, term) {
			shared = true
			break
		}
	}
	if !shared {
		return model.IdentityVerdict{}, false
	}
	if fuzzy.PartialRatio(c.company, c.label) >= m.cfg.PartialBoostThreshold {
		return model.IdentityVerdict{Status: model.StatusLikelyMatch, Score: 88, Method: "shared industry term"}, true
	}
	return model.IdentityVerdict{}, false
}

// fuzzyFallback fuses token-set and partial ratios and grades the
// result against the configured thresholds. Always decides.
func (m *Matcher) fuzzyFallback(c comparison) (model.IdentityVerdict, bool) {
	tokenSet := fuzzy.TokenSetRatio(c.company, c.label)
	partial := fuzzy.PartialRatio(c.company, c.label)

	fused := tokenSet
	switch m.cfg.Combine {
	case config.CombineMean:
		fused = (tokenSet + partial) / 2
	default: // max
		if partial > fused {
			fused = partial
		}
	}

	switch {
	case fused >= m.cfg.StrongThreshold:
		return model.IdentityVerdict{Status: model.StatusLikelyMatch, Score: fused, Method: "strong fuzzy"}, true
	case fused >= m.cfg.Threshold:
		return model.IdentityVerdict{Status: model.StatusUnsure, Score: fused, Method: "weak fuzzy"}, true
	default:
		return model.IdentityVerdict{Status: model.StatusLikelyNotMatch, Score: fused, Method: "low similarity"}, true
	}
}
