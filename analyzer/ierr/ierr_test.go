package ierr

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestFormatWithCode(t *testing.T) {
	issue := New(NewUnusedMethodCall{Positioner: &ast.Range{PosStart: 3}, MethodId: "ArrayList::tap"})
	assert.Equal(t, "(I001) UnusedMethodCall: the call to ArrayList::tap is not used", FormatWithCode(issue))
	assert.EqualValues(t, 3, issue.Pos())
	assert.NotNil(t, issue.getStack())
}

func TestIssues(t *testing.T) {
	var issues *Issues
	assert.False(t, issues.HasIssue())
	assert.Empty(t, issues.Issues())

	unused := New(NewUnusedMethodCall{Positioner: &ast.Range{}, MethodId: "Stream::filter"})
	undefined := New(NewUndefinedVariable{Positioner: &ast.Range{}, Name: "$x"})

	issues = issues.With(unused)
	assert.True(t, issues.HasIssue())
	issues = issues.Merge(nil).Merge((*Issues)(nil).With(undefined))
	assert.Len(t, issues.Issues(), 2)
	assert.Equal(t, []Issue{undefined}, issues.WithCode(UndefinedVariable))
	assert.Empty(t, issues.WithCode(MixedMethodCall))

	value := issues.LogValue()
	assert.Equal(t, slog.KindGroup, value.Kind())
	assert.Len(t, value.Group(), 2)
}
