package hook

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/stretchr/testify/assert"
	"testing"
)

type providerFunc func(event *MethodReturnTypeEvent) *types.Union

func (f providerFunc) MethodReturnType(event *MethodReturnTypeEvent) *types.Union { return f(event) }

type handlerFunc func(event *BeforeAddIssueEvent) bool

func (f handlerFunc) BeforeAddIssue(event *BeforeAddIssueEvent) bool { return f(event) }

func constProvider(t *types.Union) MethodReturnTypeProvider {
	return providerFunc(func(*MethodReturnTypeEvent) *types.Union { return t })
}

func TestMethodReturnType(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, APIVersion, r.APIVersion().String())
	assert.Nil(t, r.MethodReturnType(&MethodReturnTypeEvent{FQClassName: "ArrayList"}))

	asked := 0
	r.RegisterMethodReturnTypeProvider([]string{"ArrayList", "HashSet"}, providerFunc(func(*MethodReturnTypeEvent) *types.Union {
		asked++
		return nil
	}))
	r.RegisterMethodReturnTypeProvider([]string{"arraylist"}, constProvider(types.Int()))
	r.RegisterMethodReturnTypeProvider([]string{"ArrayList"}, constProvider(types.String()))

	assert.Equal(t, "int", r.MethodReturnType(&MethodReturnTypeEvent{FQClassName: "ARRAYLIST"}).String())
	assert.Equal(t, 1, asked)
	assert.Nil(t, r.MethodReturnType(&MethodReturnTypeEvent{FQClassName: "HashSet"}))
	assert.Equal(t, 2, asked)
	assert.Nil(t, r.MethodReturnType(&MethodReturnTypeEvent{FQClassName: "Stream"}))

	assert.Equal(t, []string{"arraylist", "hashset"}, r.ProvidedClasses())
}

func TestShouldAddIssue(t *testing.T) {
	r := NewRegistry()
	issue := ierr.New(ierr.NewUnusedMethodCall{Positioner: &ast.Range{}, MethodId: "ArrayList::tap"})
	event := &BeforeAddIssueEvent{Issue: issue}
	assert.True(t, r.ShouldAddIssue(event))

	r.RegisterBeforeAddIssueHandler(handlerFunc(func(*BeforeAddIssueEvent) bool { return true }))
	assert.True(t, r.ShouldAddIssue(event))

	r.RegisterBeforeAddIssueHandler(handlerFunc(func(e *BeforeAddIssueEvent) bool {
		return e.Issue.Code() != ierr.UnusedMethodCall
	}))
	assert.False(t, r.ShouldAddIssue(event))
}
