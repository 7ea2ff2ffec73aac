package ast

// All statement types implement the Stmt interface

// ExprStmt represents an expression used as a statement.
type ExprStmt struct {
	Range
	X Expr
}

func (s *ExprStmt) stmtNode() {}

// Hash returns a hash value for the ExprStmt, based on its structural characteristics
func (s *ExprStmt) Hash() uint64 {
	return newHasher("ExprStmt").rng(s.Range).node(s.X).sum()
}

// Return represents `return expr;`. Expr is nil for a bare `return;`
type Return struct {
	Range
	Expr Expr
}

func (s *Return) stmtNode() {}

// Hash returns a hash value for the Return, based on its structural characteristics
func (s *Return) Hash() uint64 {
	return newHasher("Return").rng(s.Range).node(s.Expr).sum()
}

// If represents if (cond) { then } else { els }
type If struct {
	Range
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (s *If) stmtNode() {}

// Hash returns a hash value for the If, based on its structural characteristics
func (s *If) Hash() uint64 {
	h := newHasher("If").rng(s.Range).node(s.Cond)
	h = nodes(h, s.Then)
	return nodes(h, s.Else).sum()
}

// VarDoc represents a `/** @var Type $name */` annotation, which declares
// the type of a variable from that point onwards
type VarDoc struct {
	Range
	Var  *Variable
	Type string
}

func (s *VarDoc) stmtNode() {}

// Hash returns a hash value for the VarDoc, based on its structural characteristics
func (s *VarDoc) Hash() uint64 {
	return newHasher("VarDoc").str(s.Type).rng(s.Range).node(s.Var).sum()
}

// Children returns the statements nested directly in stmt, in source order
func Children(stmt Stmt) []Stmt {
	switch stmt := stmt.(type) {
	case *If:
		children := make([]Stmt, 0, len(stmt.Then)+len(stmt.Else))
		children = append(children, stmt.Then...)
		return append(children, stmt.Else...)
	default:
		return nil
	}
}
