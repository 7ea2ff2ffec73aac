package ast

// Node is the base interface for all AST nodes.
type Node interface {
	Positioner
	Hash() uint64
}

// Expr is the interface for all expression nodes in the AST.
type Expr interface {
	Node
	exprNode() // Marker method to distinguish expressions
}

// Stmt is the interface for all statement nodes in the AST.
type Stmt interface {
	Node
	stmtNode() // Marker method to distinguish statements
}

// FunctionLike is implemented by the callable literals, ArrowFunction and Closure
type FunctionLike interface {
	Expr
	Parameters() []*Param
	// Statements returns the body of the function.
	// Arrow functions report their expression as a single Return statement
	Statements() []Stmt
}

var (
	_ FunctionLike = (*ArrowFunction)(nil)
	_ FunctionLike = (*Closure)(nil)
)

// File represents a parsed snippet
type File struct {
	Range
	Name  string
	Stmts []Stmt
}

// Hash returns a hash value for the File, based on its structural characteristics
func (f *File) Hash() uint64 {
	return nodes(newHasher("File").str(f.Name).rng(f.Range), f.Stmts).sum()
}
