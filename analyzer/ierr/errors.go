// Package ierr defines the issues the analyzer reports
package ierr

import (
	"fmt"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"runtime/debug"
	"strings"
)

// enableDebugErrorPrinting makes issues include the line that raised them when printed
const enableDebugErrorPrinting bool = false

type IssueCode int

const (
	None IssueCode = iota
	UnusedMethodCall
	UndefinedVariable
	UndefinedMethod
	UndefinedClass
	InvalidDocblock
	MixedMethodCall
)

var issueNames = map[IssueCode]string{
	None:              "Unclassified",
	UnusedMethodCall:  "UnusedMethodCall",
	UndefinedVariable: "UndefinedVariable",
	UndefinedMethod:   "UndefinedMethod",
	UndefinedClass:    "UndefinedClass",
	InvalidDocblock:   "InvalidDocblock",
	MixedMethodCall:   "MixedMethodCall",
}

func (c IssueCode) String() string { return issueNames[c] }

type Issue interface {
	Error() string
	Code() IssueCode
	ast.Positioner

	withStack([]byte) Issue
	getStack() []byte
}

func FormatWithCode(e Issue) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := strings.Split(string(e.getStack()), "\n")
		if len(stack) > 6 {
			return fmt.Sprintf("%s:(I%03d) %s: %s", stack[6], e.Code(), e.Code(), e.Error())
		}
	}
	return fmt.Sprintf("(I%03d) %s: %s", e.Code(), e.Code(), e.Error())
}

func New[E Issue](err E) Issue {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() IssueCode  { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}

// NewUnusedMethodCall is raised when the result of a mutation-free method is discarded
type NewUnusedMethodCall struct {
	ast.Positioner
	// MethodId is Class::method
	MethodId string
	stack    []byte
}

func (e NewUnusedMethodCall) Error() string {
	return fmt.Sprintf("the call to %s is not used", e.MethodId)
}
func (e NewUnusedMethodCall) Code() IssueCode  { return UnusedMethodCall }
func (e NewUnusedMethodCall) getStack() []byte { return e.stack }
func (e NewUnusedMethodCall) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("cannot find referenced variable $%s", e.Name)
}
func (e NewUndefinedVariable) Code() IssueCode  { return UndefinedVariable }
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}

type NewUndefinedMethod struct {
	ast.Positioner
	MethodId string
	stack    []byte
}

func (e NewUndefinedMethod) Error() string {
	return fmt.Sprintf("method %s does not exist", e.MethodId)
}
func (e NewUndefinedMethod) Code() IssueCode  { return UndefinedMethod }
func (e NewUndefinedMethod) getStack() []byte { return e.stack }
func (e NewUndefinedMethod) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}

type NewUndefinedClass struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedClass) Error() string {
	return fmt.Sprintf("class %s does not exist", e.Name)
}
func (e NewUndefinedClass) Code() IssueCode  { return UndefinedClass }
func (e NewUndefinedClass) getStack() []byte { return e.stack }
func (e NewUndefinedClass) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}

type NewInvalidDocblock struct {
	ast.Positioner
	From  error
	stack []byte
}

func (e NewInvalidDocblock) Error() string {
	return fmt.Sprintf("invalid @var annotation: %v", e.From)
}
func (e NewInvalidDocblock) Code() IssueCode  { return InvalidDocblock }
func (e NewInvalidDocblock) getStack() []byte { return e.stack }
func (e NewInvalidDocblock) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}

// NewMixedMethodCall is raised when a method is called on a value of unknown type
type NewMixedMethodCall struct {
	ast.Positioner
	Method string
	stack  []byte
}

func (e NewMixedMethodCall) Error() string {
	return fmt.Sprintf("cannot determine the type of the receiver of %s()", e.Method)
}
func (e NewMixedMethodCall) Code() IssueCode  { return MixedMethodCall }
func (e NewMixedMethodCall) getStack() []byte { return e.stack }
func (e NewMixedMethodCall) withStack(stack []byte) Issue {
	e.stack = stack
	return e
}
