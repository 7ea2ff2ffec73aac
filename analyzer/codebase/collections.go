package codebase

import (
	"strings"
)

type stubClass struct {
	name       string
	interfaces []string
	templates  []string
	abstract   bool
	methods    []stubMethod
}

type stubMethod struct {
	name         string
	ret          string
	mutationFree bool
}

// seqMethods are shared by sequences and sets. %s is replaced by the possibly-empty family
// and %e by the family with a NonEmpty guarantee stripped
var seqMethods = []stubMethod{
	{name: "filter", ret: "%e<TV>", mutationFree: true},
	{name: "filterNotNull", ret: "%e<TV>", mutationFree: true},
	{name: "tap", ret: "%s<TV>", mutationFree: true},
	{name: "reverse", ret: "%s<TV>", mutationFree: true},
	{name: "head", ret: "Option<TV>", mutationFree: true},
	{name: "count", ret: "int", mutationFree: true},
	{name: "isEmpty", ret: "bool", mutationFree: true},
}

var setMethods = []stubMethod{
	{name: "filter", ret: "%e<TV>", mutationFree: true},
	{name: "filterNotNull", ret: "%e<TV>", mutationFree: true},
	{name: "tap", ret: "%s<TV>", mutationFree: true},
	{name: "contains", ret: "bool", mutationFree: true},
	{name: "count", ret: "int", mutationFree: true},
}

var mapMethods = []stubMethod{
	{name: "filter", ret: "%e<TK, TV>", mutationFree: true},
	{name: "filterKeys", ret: "%e<TK, TV>", mutationFree: true},
	{name: "filterValues", ret: "%e<TK, TV>", mutationFree: true},
	{name: "tap", ret: "%s<TK, TV>", mutationFree: true},
	{name: "get", ret: "Option<TV>", mutationFree: true},
	{name: "keys", ret: "ArrayList<TK>", mutationFree: true},
	{name: "values", ret: "ArrayList<TV>", mutationFree: true},
	{name: "count", ret: "int", mutationFree: true},
}

var streamMethods = []stubMethod{
	{name: "filter", ret: "Stream<TV>", mutationFree: true},
	{name: "filterNotNull", ret: "Stream<TV>", mutationFree: true},
	{name: "filterKeys", ret: "Stream<TV>", mutationFree: true},
	{name: "filterValues", ret: "Stream<TV>", mutationFree: true},
	{name: "tap", ret: "Stream<TV>", mutationFree: true},
	{name: "drain", ret: "null", mutationFree: true},
	{name: "toArrayList", ret: "ArrayList<TV>", mutationFree: true},
	{name: "count", ret: "int", mutationFree: true},
}

var optionMethods = []stubMethod{
	{name: "get", ret: "TV|null", mutationFree: true},
	{name: "isSome", ret: "bool", mutationFree: true},
}

var collectionStubs = []stubClass{
	{name: "Seq", templates: []string{"TV"}, abstract: true, methods: seqMethods},
	{name: "NonEmptySeq", templates: []string{"TV"}, abstract: true, methods: seqMethods},
	{name: "ArrayList", interfaces: []string{"Seq"}, templates: []string{"TV"}, methods: seqMethods},
	{name: "LinkedList", interfaces: []string{"Seq"}, templates: []string{"TV"}, methods: seqMethods},
	{name: "NonEmptyArrayList", interfaces: []string{"NonEmptySeq"}, templates: []string{"TV"}, methods: seqMethods},
	{name: "NonEmptyLinkedList", interfaces: []string{"NonEmptySeq"}, templates: []string{"TV"}, methods: seqMethods},

	{name: "Set", templates: []string{"TV"}, abstract: true, methods: setMethods},
	{name: "NonEmptySet", templates: []string{"TV"}, abstract: true, methods: setMethods},
	{name: "HashSet", interfaces: []string{"Set"}, templates: []string{"TV"}, methods: setMethods},
	{name: "NonEmptyHashSet", interfaces: []string{"NonEmptySet"}, templates: []string{"TV"}, methods: setMethods},

	{name: "Map", templates: []string{"TK", "TV"}, abstract: true, methods: mapMethods},
	{name: "NonEmptyMap", templates: []string{"TK", "TV"}, abstract: true, methods: mapMethods},
	{name: "HashMap", interfaces: []string{"Map"}, templates: []string{"TK", "TV"}, methods: mapMethods},
	{name: "NonEmptyHashMap", interfaces: []string{"NonEmptyMap"}, templates: []string{"TK", "TV"}, methods: mapMethods},

	{name: "Stream", templates: []string{"TV"}, methods: streamMethods},
	{name: "Option", templates: []string{"TV"}, methods: optionMethods},
}

// WithCollections returns a codebase preloaded with the collection library's classes
func WithCollections() *Codebase {
	cb := New()
	for _, stub := range collectionStubs {
		cb.AddClass(&ClassLike{
			Name:       stub.name,
			Interfaces: stub.interfaces,
			Templates:  stub.templates,
			IsAbstract: stub.abstract,
		})
		for _, m := range stub.methods {
			ret := strings.NewReplacer("%s", stub.name, "%e", strings.TrimPrefix(stub.name, "NonEmpty")).Replace(m.ret)
			if err := cb.AddMethod(stub.name, m.name, ret, m.mutationFree); err != nil {
				// stubs are static, so this can only be a programming error
				panic(err)
			}
		}
	}
	return cb
}
