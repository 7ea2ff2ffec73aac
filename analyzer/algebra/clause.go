// Package algebra translates conditions into boolean formulas over type
// assertions and resolves those formulas into the assertions that must hold.
//
// A Formula is a conjunction of Clauses. A Clause is a disjunction: it holds if
// any of the assertions listed for any of its keys holds. Keys are variable ids
// such as `$x`, `$x->prop` or `$x[0]`; assertions are tokens of the reconciler
// mini-language such as `!null`, `int` or `Foo`.
package algebra

import (
	"github.com/xtgo/set"
	"maps"
	"slices"
	"sort"
	"strings"
)

type Clause struct {
	Possibilities map[string][]string
	// Wedge clauses stand for conditions the generator could not translate.
	// They hold no information and are never turned into truths
	Wedge bool
}

type Formula []Clause

// NewClause returns a clause asserting that any of assertions holds for key
func NewClause(key string, assertions ...string) Clause {
	return Clause{Possibilities: map[string][]string{key: normalize(assertions)}}
}

func wedge() Clause {
	return Clause{Wedge: true}
}

// Keys returns the sorted variable ids c talks about
func (c Clause) Keys() []string {
	return slices.Sorted(maps.Keys(c.Possibilities))
}

func (c Clause) String() string {
	if c.Wedge {
		return "<wedge>"
	}
	var parts []string
	for _, key := range c.Keys() {
		for _, assertion := range c.Possibilities[key] {
			parts = append(parts, key+" is "+assertion)
		}
	}
	return "(" + strings.Join(parts, " || ") + ")"
}

func (f Formula) String() string {
	parts := make([]string, len(f))
	for i, c := range f {
		parts[i] = c.String()
	}
	return strings.Join(parts, " && ")
}

// normalize sorts assertions and drops duplicates
func normalize(assertions []string) []string {
	data := sort.StringSlice(slices.Clone(assertions))
	sort.Sort(data)
	return data[:set.Uniq(data)]
}

// Negate turns an assertion into its opposite, so that `!null` becomes `null` and vice versa
func Negate(assertion string) string {
	if negated, ok := strings.CutPrefix(assertion, "!"); ok {
		return negated
	}
	return "!" + assertion
}

func negateAll(assertions []string) []string {
	negated := make([]string, len(assertions))
	for i, a := range assertions {
		negated[i] = Negate(a)
	}
	return normalize(negated)
}

// isTautology reports whether some key of c lists both an assertion and its negation
func (c Clause) isTautology() bool {
	for _, assertions := range c.Possibilities {
		data := sort.StringSlice(append(slices.Clone(assertions), negateAll(assertions)...))
		if set.Inter(data, len(assertions)) > 0 {
			return true
		}
	}
	return false
}

// merge is the disjunction of c and other
func (c Clause) merge(other Clause) Clause {
	if c.Wedge || other.Wedge {
		return wedge()
	}
	merged := make(map[string][]string, len(c.Possibilities)+len(other.Possibilities))
	for key, assertions := range c.Possibilities {
		merged[key] = assertions
	}
	for key, assertions := range other.Possibilities {
		merged[key] = normalize(append(slices.Clone(merged[key]), assertions...))
	}
	return Clause{Possibilities: merged}
}

func (c Clause) key() string {
	return c.String()
}
