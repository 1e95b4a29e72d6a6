// Package seniority maps free-text job titles to a fixed ordered set of
// seniority tiers using keyword precedence rules.
package seniority

import (
	"regexp"
	"strings"

	"github.com/sells-group/reconcile-cli/internal/model"
)

// rule associates a tier with the word-boundary pattern that selects it.
type rule struct {
	tier      model.Seniority
	rationale string
	pattern   *regexp.Regexp
}

// rules is checked in order; the first match wins. A title containing
// both "senior" and "manager" resolves to Manager because Manager is
// checked first; ties always resolve to the higher tier.
var rules = []rule{
	{model.SeniorityCSuite, "keyword: c-level",
		regexp.MustCompile(`\bchief\b|\bcio\b|\bcto\b|\bceo\b|\bcfo\b|\bciso\b|\bcpo\b|\bcso\b|\bcoo\b|\bchro\b|\bpresident\b`)},
	{model.SeniorityVP, "keyword: vp",
		regexp.MustCompile(`\bvice president\b|\bvp\b|\bsvp\b`)},
	{model.SeniorityHead, "keyword: head",
		regexp.MustCompile(`\bhead\b`)},
	{model.SeniorityDir, "keyword: director",
		regexp.MustCompile(`\bdirector\b`)},
	{model.SeniorityManager, "keyword: manager/mgr",
		regexp.MustCompile(`\bmanager\b|\bmgr\b`)},
	{model.SenioritySenior, "keyword: senior/lead",
		regexp.MustCompile(`\bsenior\b|\bsr\b|\blead\b|\bprincipal\b`)},
	{model.SeniorityEntry, "keyword: entry-level term",
		regexp.MustCompile(`\bintern\b|\btrainee\b|\bassistant\b|\bgraduate\b`)},
	{model.SeniorityEntry, "default: technical role",
		regexp.MustCompile(`\bengineer\b|\barchitect\b|\banalyst\b|\bdeveloper\b|\bconsultant\b|\bscientist\b|\btechnician\b|\bdesigner\b|\bassociate\b|\bcoordinator\b`)},
}

// Classify maps a job title to a seniority tier. Empty input gets the
// Entry tier with rationale "default: no seniority term found"; titles
// matching no rule default to Entry with "default: none found".
func Classify(title string) model.SeniorityResult {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return model.SeniorityResult{Tier: model.SeniorityEntry, Rationale: "default: no seniority term found"}
	}
	for _, r := range rules {
		if r.pattern.MatchString(t) {
			return model.SeniorityResult{Tier: r.tier, Rationale: r.rationale}
		}
	}
	return model.SeniorityResult{Tier: model.SeniorityEntry, Rationale: "default: none found"}
}
