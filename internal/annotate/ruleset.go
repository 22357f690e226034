package annotate

import "strings"

// Selection is the subset of configured rule-set identifiers applicable to
// one annotation pass. It has no identity beyond the pass; every pass
// computes a fresh one.
type Selection []string

// Empty reports whether no rule set applies. An empty selection makes the
// whole pass "not applicable", which is distinct from an analysis that ran
// and found nothing.
func (s Selection) Empty() bool {
	return len(s) == 0
}

// ApplicableRuleSets filters configured rule-set identifiers down to those
// targeting the given dialect, preserving order and dropping duplicates.
//
// Applicability is a substring check: a rule set applies when its identifier
// (a path or logical name such as "category/java/bestpractices.xml")
// contains the dialect id. This assumes the language id appears exclusively
// in identifiers of that language's rule sets; a path like
// "/home/user/kotlin/acme-java-rules.xml" defeats it. Known imprecision,
// kept deliberately — stricter matching would change which rule sets fire
// for existing configurations.
func ApplicableRuleSets(configured []string, dialectID string) Selection {
	var sel Selection
	seen := make(map[string]bool, len(configured))
	for _, id := range configured {
		if seen[id] || !strings.Contains(id, dialectID) {
			continue
		}
		seen[id] = true
		sel = append(sel, id)
	}
	return sel
}
