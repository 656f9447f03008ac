package fixpoint

// Expr is a scalar function of exactly one implicit free variable x.
//
// An Expr is either an affine-plus-children node (coefficient·x + constant
// + the sum of its child expressions) or a binary minimum of two
// sub-expressions. The set of node kinds is sealed: the combinators below
// rely on it being exhaustive.
//
// Ownership: Add, Scale and Div consume their operands and may mutate them
// in place. An Expr passed to a combinator must not be evaluated or
// combined again; build each equation from fresh leaves.
type Expr interface {
	// Eval computes the value of the expression at x.
	Eval(x float64) float64

	// sealed restricts implementations to this package.
	sealed()
}

// affine is the affine-plus-children node:
//
//	Eval(x) = one·x + zero + Σ children[i].Eval(x)
//
// No normalization is enforced; a child may itself reduce to a pure affine
// form and is kept as-is rather than folded into one/zero.
type affine struct {
	one      float64
	zero     float64
	children []Expr
}

// minPair is the binary minimum node: Eval(x) = min(a.Eval(x), b.Eval(x)).
type minPair struct {
	a Expr
	b Expr
}

// Eval computes one·x + zero plus the sum of all child evaluations.
func (e *affine) Eval(x float64) float64 {
	v := e.one*x + e.zero
	for _, child := range e.children {
		v += child.Eval(x)
	}

	return v
}

func (e *affine) sealed() {}

// Eval computes the smaller of the two branch evaluations.
func (e *minPair) Eval(x float64) float64 {
	a := e.a.Eval(x)
	b := e.b.Eval(x)
	if a <= b {
		return a
	}

	return b
}

func (e *minPair) sealed() {}

// Constant returns the expression with value c for every x.
func Constant(c float64) Expr {
	return &affine{zero: c}
}

// SelfConsistent returns the expression k·x: k occurrences of the implicit
// free variable and nothing else. With k=1 it injects "the very value this
// equation solves for" into an equation referring to itself.
func SelfConsistent(k float64) Expr {
	return &affine{one: k}
}

// Add returns an expression evaluating to a.Eval(x) + b.Eval(x) for all x.
//
// Two affine nodes merge: coefficients and constants add, child lists
// concatenate (order is irrelevant, evaluation only sums children). A min
// node cannot merge and is appended to the other operand's child list; two
// min nodes are wrapped under a fresh zero affine node.
//
// Both operands are consumed.
func Add(a, b Expr) Expr {
	left, leftAffine := a.(*affine)
	right, rightAffine := b.(*affine)
	switch {
	case leftAffine && rightAffine:
		left.one += right.one
		left.zero += right.zero
		left.children = append(left.children, right.children...)

		return left
	case leftAffine:
		left.children = append(left.children, b)

		return left
	case rightAffine:
		right.children = append(right.children, a)

		return right
	default:
		return &affine{children: []Expr{a, b}}
	}
}

// Scale returns an expression evaluating to s·e.Eval(x) for all x,
// provided s >= 0. It maps structurally: an affine node scales its
// coefficient, constant and every child; a min node distributes the scale
// into both branches, which commutes with min only for non-negative s.
// Negative s is a precondition violation and is not guarded.
//
// The operand is consumed.
func Scale(e Expr, s float64) Expr {
	switch node := e.(type) {
	case *affine:
		node.one *= s
		node.zero *= s
		for i, child := range node.children {
			node.children[i] = Scale(child, s)
		}

		return node
	case *minPair:
		node.a = Scale(node.a, s)
		node.b = Scale(node.b, s)

		return node
	}

	// Unreachable: Expr is sealed to the two node kinds above.
	return e
}

// Div returns an expression evaluating to e.Eval(x)/s for all x, provided
// s > 0. Division by zero and negative divisors are precondition
// violations and are not guarded; keep the divisor strictly positive at
// the call site.
//
// The operand is consumed.
func Div(e Expr, s float64) Expr {
	switch node := e.(type) {
	case *affine:
		node.one /= s
		node.zero /= s
		for i, child := range node.children {
			node.children[i] = Div(child, s)
		}

		return node
	case *minPair:
		node.a = Div(node.a, s)
		node.b = Div(node.b, s)

		return node
	}

	// Unreachable: Expr is sealed to the two node kinds above.
	return e
}

// Min returns the expression min(a.Eval(x), b.Eval(x)). No simplification
// is performed even when both operands are constants.
//
// Both operands are consumed.
func Min(a, b Expr) Expr {
	return &minPair{a: a, b: b}
}
