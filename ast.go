package ucum

import "fmt"

// Node is one production of the parsed grammar tree. Eval threads a
// Context through so resolution stays swappable (StandardContext today,
// but nothing here assumes it).
type Node interface {
	Eval(ctx Context) (Unit, error)
	String() string
}

// Context resolves a raw atom-run (already stripped of structural
// delimiters, still possibly carrying a prefix and/or trailing exponent)
// to a Unit. StandardContext in context.go is the only implementation,
// but keeping it as an interface is what let the teacher's AST stay
// decoupled from its catalog, and this port keeps that separation.
type Context interface {
	Resolve(raw string) (Unit, error)
}

// UnitAtomNode names a single prefixed, exponentiated atom — the
// grammar's "annotatable" production without its optional annotation
// (that's AnnotationNode's job when present). It is the generalization of
// the teacher's IdentNode to UCUM's richer atom-run syntax.
type UnitAtomNode struct {
	Raw string
}

func (n *UnitAtomNode) Eval(ctx Context) (Unit, error) {
	return ctx.Resolve(n.Raw)
}

func (n *UnitAtomNode) String() string {
	return n.Raw
}

// FactorNode is a bare numeric factor component, e.g. the "2" in "2.m".
// It generalizes the teacher's NumberNode: factors are always integers in
// UCUM's grammar, but are kept as float64 to compose uniformly with
// Term.scalar's math.Pow arithmetic.
type FactorNode struct {
	Value float64
}

func (n *FactorNode) Eval(ctx Context) (Unit, error) {
	return Unit{{Kind: TermFactor, Factor: n.Value, Exponent: 1}}, nil
}

func (n *FactorNode) String() string {
	return fmt.Sprintf("%g", n.Value)
}

// AnnotationNode is a component that is nothing but a curly-brace
// annotation, e.g. the bare "{tot}" in "{tot}/L", where the annotation
// follows no atom (in "g/L{tot}" it attaches to L). New relative to the
// teacher: UCUM's grammar allows this; SI expressions never needed it.
type AnnotationNode struct {
	Text string
}

func (n *AnnotationNode) Eval(ctx Context) (Unit, error) {
	return Unit{{Kind: TermAnnotationOnly, Annotation: n.Text, Exponent: 1}}, nil
}

func (n *AnnotationNode) String() string {
	return "{" + n.Text + "}"
}

// AnnotatedNode pairs an atom (or factor) component with a trailing
// annotation, e.g. "mg{RBC}". New relative to the teacher, which never
// needed to carry annotation text through evaluation.
type AnnotatedNode struct {
	Inner      Node
	Annotation string
}

func (n *AnnotatedNode) Eval(ctx Context) (Unit, error) {
	u, err := n.Inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	out := make(Unit, len(u))
	copy(out, u)
	if len(out) > 0 {
		out[len(out)-1].Annotation = n.Annotation
	}
	return out, nil
}

func (n *AnnotatedNode) String() string {
	return fmt.Sprintf("%s{%s}", n.Inner, n.Annotation)
}

// BinaryNode represents the grammar's term := component (('.'|'/') term)?
// production: Op is '.' or '/', and for '/' the entire (possibly nested)
// Right subtree is inverted exactly once, which is what makes "a/b/c"
// parse as "a, b-1, c" rather than "a, b-1, c-1" — Right is already the
// fully parsed remainder, so inverting it here inverts it only once no
// matter how deep the chain goes.
type BinaryNode struct {
	Op    TokenKind
	Left  Node
	Right Node
}

func (n *BinaryNode) Eval(ctx Context) (Unit, error) {
	left, err := n.Left.Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluating left operand: %w", err)
	}
	right, err := n.Right.Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluating right operand: %w", err)
	}

	switch n.Op {
	case TokenDot:
		return left.Concat(right), nil
	case TokenSlash:
		return left.Div(right), nil
	default:
		return nil, fmt.Errorf("unsupported term operator: %v", n.Op)
	}
}

func (n *BinaryNode) String() string {
	op := "."
	if n.Op == TokenSlash {
		op = "/"
	}
	return fmt.Sprintf("%s%s%s", n.Left, op, n.Right)
}

// GroupNode is a parenthesized term. UCUM's grammar never lets an
// exponent follow a ')', so unlike the teacher's PowerNode-wrapped
// GroupNode there is nothing here for an exponent to attach to.
type GroupNode struct {
	Inner Node
}

func (n *GroupNode) Eval(ctx Context) (Unit, error) {
	return n.Inner.Eval(ctx)
}

func (n *GroupNode) String() string {
	return fmt.Sprintf("(%s)", n.Inner)
}

// MainTermNode represents the grammar's top-level main_term := '/'? term,
// where a single leading slash inverts the whole expression (e.g. "/min"
// for "per minute").
type MainTermNode struct {
	Inverted bool
	Inner    Node
}

func (n *MainTermNode) Eval(ctx Context) (Unit, error) {
	if n.Inner == nil {
		return UnitUnity, nil
	}
	u, err := n.Inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	if n.Inverted {
		return u.Invert(), nil
	}
	return u, nil
}

func (n *MainTermNode) String() string {
	if n.Inner == nil {
		return ""
	}
	if n.Inverted {
		return "/" + n.Inner.String()
	}
	return n.Inner.String()
}
