package ucum

import "fmt"

// UnknownUnitString is returned when an expression cannot be resolved
// against the catalog at all, after exponent and prefix peeling have
// both been tried. Err, when present, is the more specific resolver-stage
// failure the parser embeds here (spec §7).
type UnknownUnitString struct {
	Unit string
	Err  error
}

func (e *UnknownUnitString) Error() string {
	return fmt.Sprintf("ucum: unknown unit string %q", e.Unit)
}

func (e *UnknownUnitString) Unwrap() error {
	return e.Err
}

// BadFragment is returned when the parser finds a byte sequence that
// cannot begin any grammar production at the given position.
type BadFragment struct {
	Fragment string
	Position int
}

func (e *BadFragment) Error() string {
	return fmt.Sprintf("ucum: bad fragment %q at position %d", e.Fragment, e.Position)
}

// UnableToParse is returned when tokenization succeeds but no valid parse
// tree can be built from the resulting tokens (an unclosed '(' or tokens
// left over after a complete term, such as a stray ')'). A missing
// operand, as in "m/" or ".m", is reported as BadFragment instead.
type UnableToParse struct {
	Expression string
}

func (e *UnableToParse) Error() string {
	return fmt.Sprintf("ucum: unable to parse expression %q", e.Expression)
}

// IncompatibleUnitTypes is returned by operations that require two units
// to share a Composition (conversion, compatibility-checked arithmetic)
// when they do not.
type IncompatibleUnitTypes struct {
	LHS string
	RHS string
}

func (e *IncompatibleUnitTypes) Error() string {
	return fmt.Sprintf("ucum: incompatible unit types: %q and %q", e.LHS, e.RHS)
}

// UnknownAtomSymbol is returned by Context.Resolve when an atom-run's
// core symbol (after any prefix and exponent have been peeled off)
// matches nothing in the catalog.
type UnknownAtomSymbol struct {
	Symbol string
}

func (e *UnknownAtomSymbol) Error() string {
	return fmt.Sprintf("ucum: unknown atom symbol %q", e.Symbol)
}

// UnknownPrefixSymbol is returned when a JSON-encoded term names a prefix
// symbol that is not a registered prefix. The parser's resolver never
// returns it: its prefix peel only tries symbols drawn from allPrefixes.
type UnknownPrefixSymbol struct {
	Symbol string
}

func (e *UnknownPrefixSymbol) Error() string {
	return fmt.Sprintf("ucum: unknown prefix symbol %q", e.Symbol)
}

// ErrSpecialUnitComposition is returned when a special (non-linear) atom
// appears with an exponent other than 1, or alongside other terms in a
// product — spec §9 leaves this underspecified in the reference
// implementation, so it is rejected here rather than silently guessed at.
type ErrSpecialUnitComposition struct {
	Unit string
}

func (e *ErrSpecialUnitComposition) Error() string {
	return fmt.Sprintf("ucum: special unit %q cannot carry an exponent or appear in a composite product", e.Unit)
}
