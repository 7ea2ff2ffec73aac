package ast

// All expression types implement the Expr interface

// Variable represents a variable reference such as $x. Name excludes the leading '$'
type Variable struct {
	Range
	Name string
}

func (e *Variable) exprNode() {}

// Hash returns a hash value for the Variable, based on its structural characteristics
func (e *Variable) Hash() uint64 {
	return newHasher("Variable").str(e.Name).rng(e.Range).sum()
}

// Id returns the variable identifier as used in assertion keys, including the '$'
func (e *Variable) Id() string { return "$" + e.Name }

// LitKind is the kind of a Literal
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
)

// Literal represents a scalar literal value (integer, float or string).
type Literal struct {
	Range
	Kind  LitKind
	Value string
}

func (e *Literal) exprNode() {}

// Hash returns a hash value for the Literal, based on its structural characteristics
func (e *Literal) Hash() uint64 {
	return newHasher("Literal").str(e.Value).str(litKindNames[e.Kind]).rng(e.Range).sum()
}

var litKindNames = map[LitKind]string{LitInt: "int", LitFloat: "float", LitString: "string"}

// ConstFetch represents one of the constants true, false and null
type ConstFetch struct {
	Range
	Name string // lowercase
}

func (e *ConstFetch) exprNode() {}

// Hash returns a hash value for the ConstFetch, based on its structural characteristics
func (e *ConstFetch) Hash() uint64 {
	return newHasher("ConstFetch").str(e.Name).rng(e.Range).sum()
}

// IsNull returns true when expr is the null constant
func IsNull(expr Expr) bool {
	c, ok := expr.(*ConstFetch)
	return ok && c.Name == "null"
}

// PropertyFetch represents $x->name
type PropertyFetch struct {
	Range
	Var  Expr
	Name string
}

func (e *PropertyFetch) exprNode() {}

// Hash returns a hash value for the PropertyFetch, based on its structural characteristics
func (e *PropertyFetch) Hash() uint64 {
	return newHasher("PropertyFetch").str(e.Name).rng(e.Range).node(e.Var).sum()
}

// ArrayDimFetch represents $x[dim]
type ArrayDimFetch struct {
	Range
	Var Expr
	Dim Expr
}

func (e *ArrayDimFetch) exprNode() {}

// Hash returns a hash value for the ArrayDimFetch, based on its structural characteristics
func (e *ArrayDimFetch) Hash() uint64 {
	return newHasher("ArrayDimFetch").rng(e.Range).node(e.Var).node(e.Dim).sum()
}

// Arg is a single argument of a call
type Arg struct {
	Range
	Value  Expr
	Name   string // set for named arguments
	Unpack bool   // ...$args
}

// Hash returns a hash value for the Arg, based on its structural characteristics
func (a *Arg) Hash() uint64 {
	return newHasher("Arg").str(a.Name).flag(a.Unpack).rng(a.Range).node(a.Value).sum()
}

// MethodCall represents $x->name(args).
// When FirstClassCallable is set the call was written as $x->name(...) and Args is empty
type MethodCall struct {
	Range
	Var                Expr
	Name               string
	Args               []*Arg
	FirstClassCallable bool
}

func (e *MethodCall) exprNode() {}

// Hash returns a hash value for the MethodCall, based on its structural characteristics
func (e *MethodCall) Hash() uint64 {
	h := newHasher("MethodCall").str(e.Name).flag(e.FirstClassCallable).rng(e.Range).node(e.Var)
	return nodes(h, e.Args).sum()
}

// FuncCall represents name(args)
type FuncCall struct {
	Range
	Name               string
	Args               []*Arg
	FirstClassCallable bool
}

func (e *FuncCall) exprNode() {}

// Hash returns a hash value for the FuncCall, based on its structural characteristics
func (e *FuncCall) Hash() uint64 {
	h := newHasher("FuncCall").str(e.Name).flag(e.FirstClassCallable).rng(e.Range)
	return nodes(h, e.Args).sum()
}

// Isset represents isset($a, $b, ...)
type Isset struct {
	Range
	Vars []Expr
}

func (e *Isset) exprNode() {}

// Hash returns a hash value for the Isset, based on its structural characteristics
func (e *Isset) Hash() uint64 {
	return nodes(newHasher("Isset").rng(e.Range), e.Vars).sum()
}

// Instanceof represents expr instanceof Class
type Instanceof struct {
	Range
	Expr  Expr
	Class string
}

func (e *Instanceof) exprNode() {}

// Hash returns a hash value for the Instanceof, based on its structural characteristics
func (e *Instanceof) Hash() uint64 {
	return newHasher("Instanceof").str(e.Class).rng(e.Range).node(e.Expr).sum()
}

// Op is the operator of a BinaryOp
type Op int

const (
	OpIdentical Op = iota
	OpNotIdentical
	OpEqual
	OpNotEqual
	OpAnd
	OpOr
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
)

var opStrings = map[Op]string{
	OpIdentical:    "===",
	OpNotIdentical: "!==",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpAnd:          "&&",
	OpOr:           "||",
	OpLess:         "<",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
}

func (o Op) String() string { return opStrings[o] }

// precedence follows the usual binding strength, higher binds tighter
func (o Op) precedence() int16 {
	switch o {
	case OpOr:
		return 1
	case OpAnd:
		return 2
	case OpIdentical, OpNotIdentical, OpEqual, OpNotEqual:
		return 3
	default:
		return 4
	}
}

// BinaryOp represents a binary operation (a === b, a && b, etc.).
type BinaryOp struct {
	Range
	Op    Op
	Left  Expr
	Right Expr
}

func (e *BinaryOp) exprNode() {}

// Hash returns a hash value for the BinaryOp, based on its structural characteristics
func (e *BinaryOp) Hash() uint64 {
	return newHasher("BinaryOp").str(e.Op.String()).rng(e.Range).node(e.Left).node(e.Right).sum()
}

// Not represents !expr
type Not struct {
	Range
	Expr Expr
}

func (e *Not) exprNode() {}

// Hash returns a hash value for the Not, based on its structural characteristics
func (e *Not) Hash() uint64 {
	return newHasher("Not").rng(e.Range).node(e.Expr).sum()
}

// Assign represents $x = expr
type Assign struct {
	Range
	Var  Expr
	Expr Expr
}

func (e *Assign) exprNode() {}

// Hash returns a hash value for the Assign, based on its structural characteristics
func (e *Assign) Hash() uint64 {
	return newHasher("Assign").rng(e.Range).node(e.Var).node(e.Expr).sum()
}

// ArrayLit represents [a, b, ...], which is also the destructuring pattern of parameters
type ArrayLit struct {
	Range
	Items []Expr
}

func (e *ArrayLit) exprNode() {}

// Hash returns a hash value for the ArrayLit, based on its structural characteristics
func (e *ArrayLit) Hash() uint64 {
	return nodes(newHasher("ArrayLit").rng(e.Range), e.Items).sum()
}

// Param is a parameter of a FunctionLike.
// Var is a *Variable for plain parameters, or an *ArrayLit for destructuring patterns
type Param struct {
	Range
	Var      Expr
	Type     string // optional declared type, as written
	Variadic bool
	ByRef    bool
}

// Hash returns a hash value for the Param, based on its structural characteristics
func (p *Param) Hash() uint64 {
	return newHasher("Param").str(p.Type).flag(p.Variadic).flag(p.ByRef).rng(p.Range).node(p.Var).sum()
}

// ArrowFunction represents fn($x) => expr
type ArrowFunction struct {
	Range
	Params []*Param
	Expr   Expr
}

func (e *ArrowFunction) exprNode() {}

// Hash returns a hash value for the ArrowFunction, based on its structural characteristics
func (e *ArrowFunction) Hash() uint64 {
	return nodes(newHasher("ArrowFunction").rng(e.Range).node(e.Expr), e.Params).sum()
}

func (e *ArrowFunction) Parameters() []*Param { return e.Params }

func (e *ArrowFunction) Statements() []Stmt {
	return []Stmt{&Return{Range: RangeOf(e.Expr), Expr: e.Expr}}
}

// Closure represents function($x) use ($y) { stmts }
type Closure struct {
	Range
	Params []*Param
	Uses   []*Variable
	Stmts  []Stmt
}

func (e *Closure) exprNode() {}

// Hash returns a hash value for the Closure, based on its structural characteristics
func (e *Closure) Hash() uint64 {
	h := nodes(newHasher("Closure").rng(e.Range), e.Params)
	h = nodes(h, e.Uses)
	return nodes(h, e.Stmts).sum()
}

func (e *Closure) Parameters() []*Param { return e.Params }
func (e *Closure) Statements() []Stmt   { return e.Stmts }
