// Package scope holds the variable types known at a point of the analysis.
package scope

import (
	"github.com/fp4php/functional-collection/analyzer/types"
	"maps"
	"slices"
)

// Context is the analysis context of a statement: the types of the variables
// in scope and the class `self` refers to
type Context struct {
	Self string
	vars map[string]*types.Union
}

func New(self string) *Context {
	return &Context{Self: self, vars: make(map[string]*types.Union)}
}

// Lookup returns the type of the variable id, such as `$x`
func (c *Context) Lookup(id string) (*types.Union, bool) {
	t, ok := c.vars[id]
	return t, ok
}

// Assign sets the type of the variable id
func (c *Context) Assign(id string, t *types.Union) {
	c.vars[id] = t
}

// Vars returns the sorted ids of the variables in scope
func (c *Context) Vars() []string {
	return slices.Sorted(maps.Keys(c.vars))
}

// Clone returns an independent copy of c, as used for nested scopes
func (c *Context) Clone() *Context {
	return &Context{Self: c.Self, vars: maps.Clone(c.vars)}
}

// Types returns a copy of the types of the variables in scope, keyed by id
func (c *Context) Types() map[string]*types.Union {
	return maps.Clone(c.vars)
}
