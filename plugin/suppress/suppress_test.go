package suppress

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/stretchr/testify/assert"
	"testing"
)

func unusedCall(methodId string) *hook.BeforeAddIssueEvent {
	return &hook.BeforeAddIssueEvent{
		Issue:    ierr.New(ierr.NewUnusedMethodCall{Positioner: ast.Range{}, MethodId: methodId}),
		Codebase: codebase.WithCollections(),
	}
}

func TestSuppressesWhitelistedMethods(t *testing.T) {
	s := New([]string{"Seq::tap", "Stream::drain"})

	assert.False(t, s.BeforeAddIssue(unusedCall("Seq::tap")))
	assert.False(t, s.BeforeAddIssue(unusedCall("stream::DRAIN")))
	// ArrayList implements Seq
	assert.False(t, s.BeforeAddIssue(unusedCall("ArrayList::tap")))

	assert.True(t, s.BeforeAddIssue(unusedCall("ArrayList::filter")))
	assert.True(t, s.BeforeAddIssue(unusedCall("HashSet::tap")))
	assert.True(t, s.BeforeAddIssue(unusedCall("malformed")))
}

func TestOtherIssuesAreKept(t *testing.T) {
	s := New([]string{"Seq::tap"})
	event := &hook.BeforeAddIssueEvent{
		Issue: ierr.New(ierr.NewUndefinedMethod{Positioner: ast.Range{}, MethodId: "Seq::tap"}),
	}
	assert.True(t, s.BeforeAddIssue(event))
}

func TestSuppressesWithoutCodebase(t *testing.T) {
	s := New([]string{"Seq::tap"})
	assert.True(t, s.Suppresses("Seq::tap", nil))
	assert.False(t, s.Suppresses("ArrayList::tap", nil))
}
