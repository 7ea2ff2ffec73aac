// Package codebase holds what the analyzer knows about classes: their
// ancestors, template parameters and method stubs.
package codebase

import (
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
	"strings"
)

// MethodStub describes the declared signature of a method.
// Return may refer to the template parameters of the declaring class
type MethodStub struct {
	Name   string
	Return *types.Union

	// MutationFree methods have no side effects, so discarding their result is a mistake
	MutationFree bool
}

// ClassLike is a class or interface known to the codebase
type ClassLike struct {
	Name       string
	Parent     string
	Interfaces []string
	Templates  []string
	IsAbstract bool
	methods    map[string]*MethodStub
}

// Method looks up a method by case-insensitive name, declared on c itself
func (c *ClassLike) Method(name string) (*MethodStub, bool) {
	m, ok := c.methods[strings.ToLower(name)]
	return m, ok
}

type Codebase struct {
	classes map[string]*ClassLike
}

func New() *Codebase {
	return &Codebase{classes: make(map[string]*ClassLike)}
}

// AddClass registers class, replacing any class of the same (case-insensitive) name
func (cb *Codebase) AddClass(class *ClassLike) {
	if class.methods == nil {
		class.methods = make(map[string]*MethodStub)
	}
	cb.classes[strings.ToLower(class.Name)] = class
}

// AddMethod parses returnType against the templates of class and stores the stub
func (cb *Codebase) AddMethod(class, method, returnType string, mutationFree bool) error {
	c, ok := cb.Class(class)
	if !ok {
		return errors.Errorf("cannot add method %s to unknown class %s", method, class)
	}
	ret, err := types.ParseTypeWithTemplates(returnType, c.Templates)
	if err != nil {
		return errors.Wrapf(err, "bad return type for %s::%s", class, method)
	}
	c.methods[strings.ToLower(method)] = &MethodStub{Name: method, Return: ret, MutationFree: mutationFree}
	return nil
}

func (cb *Codebase) Class(name string) (*ClassLike, bool) {
	c, ok := cb.classes[strings.ToLower(name)]
	return c, ok
}

func (cb *Codebase) ClassExists(name string) bool {
	_, ok := cb.Class(name)
	return ok
}

// Ancestors returns the lowercased names of every class and interface name
// extends or implements, transitively, including name itself
func (cb *Codebase) Ancestors(name string) *set.Set[string] {
	seen := set.New[string](4)
	var visit func(string)
	visit = func(n string) {
		if n == "" || !seen.Insert(strings.ToLower(n)) {
			return
		}
		c, ok := cb.Class(n)
		if !ok {
			return
		}
		visit(c.Parent)
		for _, i := range c.Interfaces {
			visit(i)
		}
	}
	visit(name)
	return seen
}

// IsSubclassOf reports whether child is parent, or extends or implements it
func (cb *Codebase) IsSubclassOf(child, parent string) bool {
	return cb.Ancestors(child).Contains(strings.ToLower(parent))
}

// FindMethod looks method up on class and then on its ancestors
func (cb *Codebase) FindMethod(class, method string) (*MethodStub, *ClassLike, bool) {
	c, ok := cb.Class(class)
	if !ok {
		return nil, nil, false
	}
	if m, ok := c.Method(method); ok {
		return m, c, true
	}
	if c.Parent != "" {
		if m, declaring, ok := cb.FindMethod(c.Parent, method); ok {
			return m, declaring, true
		}
	}
	for _, i := range c.Interfaces {
		if m, declaring, ok := cb.FindMethod(i, method); ok {
			return m, declaring, true
		}
	}
	return nil, nil, false
}
