package refine

import (
	"github.com/hashicorp/go-set/v3"
	"strings"
)

// Kind groups collection families by the shape of their type parameters
type Kind int

const (
	KindSeq Kind = iota
	KindSet
	KindMap
	KindStream
)

var kindNames = map[Kind]string{
	KindSeq:    "Seq",
	KindSet:    "Set",
	KindMap:    "Map",
	KindStream: "Stream",
}

func (k Kind) String() string { return kindNames[k] }

// Family is a collection class whose filter calls can be refined
type Family struct {
	Name string
	Kind Kind
}

// Families is the closed list of refinable collection classes
var Families = []Family{
	{"Seq", KindSeq},
	{"ArrayList", KindSeq},
	{"LinkedList", KindSeq},
	{"NonEmptySeq", KindSeq},
	{"NonEmptyArrayList", KindSeq},
	{"NonEmptyLinkedList", KindSeq},
	{"Set", KindSet},
	{"HashSet", KindSet},
	{"NonEmptySet", KindSet},
	{"NonEmptyHashSet", KindSet},
	{"Map", KindMap},
	{"HashMap", KindMap},
	{"NonEmptyMap", KindMap},
	{"NonEmptyHashMap", KindMap},
	{"Stream", KindStream},
}

var familyKinds = func() map[string]Kind {
	kinds := make(map[string]Kind, len(Families))
	for _, f := range Families {
		kinds[strings.ToLower(f.Name)] = f.Kind
	}
	return kinds
}()

// refinableMethods are the lowercased methods refined per Kind
var refinableMethods = map[Kind]*set.Set[string]{
	KindSeq:    set.From([]string{"filter", "filternotnull"}),
	KindSet:    set.From([]string{"filter", "filternotnull"}),
	KindMap:    set.From([]string{"filterkeys", "filtervalues"}),
	KindStream: set.From([]string{"filter", "filternotnull", "filterkeys", "filtervalues"}),
}

// FamilyNames returns the names of Families, in declaration order
func FamilyNames() []string {
	names := make([]string, len(Families))
	for i, f := range Families {
		names[i] = f.Name
	}
	return names
}

// KindOf looks family up case-insensitively
func KindOf(family string) (Kind, bool) {
	k, ok := familyKinds[strings.ToLower(family)]
	return k, ok
}

// RefinableMethods returns the sorted, lowercased methods of family whose return type may be refined
func RefinableMethods(family string) []string {
	k, ok := KindOf(family)
	if !ok {
		return nil
	}
	return set.TreeSetFrom(refinableMethods[k].Slice(), strings.Compare).Slice()
}

// withoutNonEmpty is the family a filter on family returns: filtering may remove every element
func withoutNonEmpty(family string) string {
	return strings.TrimPrefix(family, "NonEmpty")
}
