// Package normalize standardizes free-text company names, domains, and
// email addresses for matching.
package normalize

import (
	"regexp"
	"strings"
)

// legalSuffixes lists corporate legal-entity suffix tokens dropped
// during name normalization. Matching is whole-token after punctuation
// stripping, so "s.r.l" survives as "s r l" tokens; the joined form is
// also listed where it occurs as a single token.
var legalSuffixes = map[string]struct{}{
	"ltd": {}, "limited": {}, "co": {}, "company": {}, "corp": {},
	"corporation": {}, "inc": {}, "incorporated": {}, "plc": {},
	"public": {}, "llc": {}, "lp": {}, "llp": {}, "ulc": {}, "pc": {},
	"pllc": {}, "sa": {}, "ag": {}, "nv": {}, "se": {}, "bv": {},
	"oy": {}, "ab": {}, "aps": {}, "as": {}, "kft": {}, "zrt": {},
	"rt": {}, "sarl": {}, "sas": {}, "spa": {}, "gmbh": {}, "ug": {},
	"bvba": {}, "cvba": {}, "nvsa": {}, "pte": {}, "pty": {}, "bhd": {},
	"sdn": {}, "kabushiki": {}, "kaisha": {}, "kk": {}, "godo": {},
	"dmcc": {}, "pjsc": {}, "psc": {}, "jsc": {}, "ltda": {}, "srl": {},
	"group": {}, "holdings": {}, "limitedpartnership": {},
}

var (
	nonAlphanumericRe = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	schemeRe          = regexp.MustCompile(`^https?://`)
)

// Name cleans and simplifies a company name for comparison: lowercase,
// punctuation to spaces, legal-suffix tokens dropped, single-spaced.
// Token order is preserved so fuzzy comparisons stay stable. Empty
// input yields "".
func Name(text string) string {
	text = nonAlphanumericRe.ReplaceAllString(strings.ToLower(text), " ")
	var kept []string
	for _, tok := range strings.Fields(text) {
		if _, drop := legalSuffixes[tok]; drop {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// Domain extracts the core domain label from a URL or bare domain
// string: scheme, path, and "www." stripped, then the second-to-last
// dot-separated segment when at least two exist. Invalid input yields
// the cleaned string or "".
func Domain(value string) string {
	d := strings.ToLower(strings.TrimSpace(value))
	d = schemeRe.ReplaceAllString(d, "")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	d = strings.TrimPrefix(d, "www.")
	parts := strings.Split(d, ".")
	if len(parts) >= 2 {
		return parts[len(parts)-2]
	}
	return d
}

// EmailDomain returns the lowercased domain portion of an email
// address, with "www." and any path suffix stripped. No TLD collapsing
// happens here. Input without "@" yields "".
func EmailDomain(value string) string {
	at := strings.LastIndexByte(value, '@')
	if at < 0 {
		return ""
	}
	d := strings.ToLower(strings.TrimSpace(value[at+1:]))
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return strings.TrimPrefix(d, "www.")
}

// Despace removes all spaces, for containment checks on normalized
// names.
func Despace(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// StripNonAlphanumeric removes every character outside [a-z0-9],
// used to reduce a domain label to comparable letters.
func StripNonAlphanumeric(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Acronym builds an acronym from the first letter of each token in the
// raw name, lowercased. Non-letter leading characters are skipped.
func Acronym(name string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		r := rune(tok[0])
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
