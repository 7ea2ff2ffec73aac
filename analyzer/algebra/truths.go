package algebra

import (
	"slices"
)

// Truths returns the assertions that hold whenever f does, keyed by variable id.
//
// Each entry is a conjunction of disjunctions: every inner list must have at
// least one assertion hold. Only clauses about a single variable are definite
// enough to become truths; clauses spanning several variables hold for one of
// them, but not for any one in particular
func Truths(f Formula) map[string][][]string {
	truths := make(map[string][][]string)
	for _, clause := range f {
		if clause.Wedge || len(clause.Possibilities) != 1 {
			continue
		}
		for key, assertions := range clause.Possibilities {
			if slices.ContainsFunc(truths[key], func(existing []string) bool {
				return slices.Equal(existing, assertions)
			}) {
				continue
			}
			truths[key] = append(truths[key], slices.Clone(assertions))
		}
	}
	return truths
}
