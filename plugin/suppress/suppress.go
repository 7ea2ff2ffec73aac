// Package suppress keeps the analyzer from reporting discarded results of
// collection methods which are only ever called for their side effects.
package suppress

import (
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/internal/log"
	"github.com/fp4php/functional-collection/util"
	"github.com/hashicorp/go-set/v3"
	"slices"
	"strings"
)

var logger = log.Section("suppress")

// UnusedCallSuppressor vetoes UnusedMethodCall issues on whitelisted methods
type UnusedCallSuppressor struct {
	// methods holds lowercased `class::method` ids
	methods *set.Set[string]
}

var _ hook.BeforeAddIssueHandler = (*UnusedCallSuppressor)(nil)

// New whitelists methods, given as `Class::method` ids
func New(methods []string) *UnusedCallSuppressor {
	lowered := util.MapIter(slices.Values(methods), strings.ToLower)
	return &UnusedCallSuppressor{methods: util.SetFromSeq(lowered, len(methods))}
}

// Suppresses reports whether methodId, `Class::method`, is whitelisted.
// When ancestors is not nil, whitelisted methods of ancestors apply too
func (s *UnusedCallSuppressor) Suppresses(methodId string, ancestors func(class string) *set.Set[string]) bool {
	class, method, ok := strings.Cut(strings.ToLower(methodId), "::")
	if !ok {
		return false
	}
	classes := set.From([]string{class})
	if ancestors != nil {
		classes.InsertSet(ancestors(class))
	}
	for _, c := range classes.Slice() {
		if s.methods.Contains(c + "::" + method) {
			return true
		}
	}
	return false
}

func (s *UnusedCallSuppressor) BeforeAddIssue(event *hook.BeforeAddIssueEvent) bool {
	unused, ok := event.Issue.(ierr.NewUnusedMethodCall)
	if !ok {
		return true
	}
	var ancestors func(string) *set.Set[string]
	if event.Codebase != nil {
		ancestors = event.Codebase.Ancestors
	}
	if s.Suppresses(unused.MethodId, ancestors) {
		logger.Debug("suppressed unused call", "method", unused.MethodId)
		return false
	}
	return true
}
