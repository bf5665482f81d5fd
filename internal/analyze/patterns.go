package analyze

import (
	"regexp"
	"sort"
	"strings"
)

// PatternRule is a single structural header pattern. Rules are kept in a
// fixed priority order; priority only breaks specificity ties.
type PatternRule struct {
	re *regexp.Regexp
}

// PatternSet is the ordered collection of header patterns recognized by the
// detector.
type PatternSet struct {
	rules []PatternRule
}

// Match is one pattern hit in a header string. Specificity is the length of
// the matched, cleaned text; longer matches carry more information and win
// over shorter ones regardless of rule order.
type Match struct {
	Name        string
	Specificity int
	priority    int
}

// DefaultPatternSet returns the pattern set for the exam-paper corpus:
// self assessment papers, sample question papers, practice/mock/test papers,
// their abbreviations, mind maps, and a generic chapter/unit/part fallback.
// All patterns are case-insensitive and anchored at line start.
func DefaultPatternSet() *PatternSet {
	exprs := []string{
		// 'SOLVED Self Assessment Paper-4' and friends
		`(?im)^(SOLVED|UNSOLVED|SOLUTIONS)\s+Self\s+Assessment\s+Paper-\d+`,
		// 'Self Assessment Paper-4' with no status tag
		`(?im)^Self\s+Assessment\s+Paper-\d+`,
		// 'Sample Question Paper-1', 'Sample Question SOLVED Paper-1'
		`(?im)^(SOLVED|UNSOLVED|SOLUTIONS)?\s*Sample\s+Question\s+(?:SOLVED\s+)?Paper-\d+`,
		// 'Practice Paper-2', 'Mock Test-3', 'Test Paper-4', 'Question Paper-5'
		`(?im)^(SOLVED|UNSOLVED|SOLUTIONS)?\s*(Practice|Mock|Test|Question)\s+(Paper|Test)?-\d+`,
		// Abbreviated forms
		`(?im)^(SOLVED|UNSOLVED|SOLUTIONS)?\s*SQP\s*-\s*\d+`,
		`(?im)^(SOLVED|UNSOLVED|SOLUTIONS)?\s*SAP\s*-\s*\d+`,
		`(?im)^(SOLVED|UNSOLVED|SOLUTIONS)?\s*PP\s*-\s*\d+`,
		// Mind map and on-tips sections
		`(?im)^Mind\s+Map\s*-\s*\d+`,
		`(?im)^Mind\s+map`,
		`(?im)^On\s+tips`,
		// Generic chapter/unit/part fallback
		`(?im)^\s*(SOLVED|UNSOLVED|SOLUTIONS)?\s*(chapter|unit|part)\s*\d+\s*[:.\-]?\s*.*`,
	}

	rules := make([]PatternRule, len(exprs))
	for i, expr := range exprs {
		rules[i] = PatternRule{re: regexp.MustCompile(expr)}
	}
	return &PatternSet{rules: rules}
}

// Match runs every rule against the header text and returns all hits.
func (ps *PatternSet) Match(header string) []Match {
	var matches []Match
	for priority, rule := range ps.rules {
		for _, hit := range rule.re.FindAllString(header, -1) {
			name := cleanName(hit)
			if name == "" {
				continue
			}
			matches = append(matches, Match{
				Name:        name,
				Specificity: len(name),
				priority:    priority,
			})
		}
	}
	return matches
}

// Best selects the winning match: highest specificity first, rule priority
// (registration order) breaking ties. Returns false if there are no matches.
func Best(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Specificity != sorted[j].Specificity {
			return sorted[i].Specificity > sorted[j].Specificity
		}
		return sorted[i].priority < sorted[j].priority
	})
	return sorted[0], true
}

// cleanName normalizes a raw pattern hit into a chapter name: surrounding
// whitespace trimmed, embedded newlines flattened to spaces.
func cleanName(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "\n", " ")
}

// TagOf extracts the status tag from a chapter name: its first
// whitespace-delimited token, or "NA" when the name is empty.
func TagOf(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "NA"
	}
	return fields[0]
}
