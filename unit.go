package ucum

import "fmt"

// Unit is an ordered product of Terms — spec's term-algebra model, kept
// as a flat slice rather than the teacher's single scalar+Dimension pair
// so that expression()/expression_reduced() can round-trip exactly what
// was parsed (including annotations and repeated atoms), while Scalar()
// and Composition() fold the slice down to a single number and vector
// on demand.
type Unit []Term

// UnitUnity is the dimensionless, scalar-1 unit — what an empty
// main_term parses to (spec §9's Open Question on empty expressions).
var UnitUnity = Unit{}

// Concat appends other's terms after u's own, implementing the grammar's
// '.' (multiplication) operator.
func (u Unit) Concat(other Unit) Unit {
	out := make(Unit, 0, len(u)+len(other))
	out = append(out, u...)
	out = append(out, other...)
	return out
}

// Invert negates every term's exponent, implementing the grammar's '/'
// operator applied to the entire right-hand term it governs.
func (u Unit) Invert() Unit {
	out := make(Unit, len(u))
	for i, t := range u {
		out[i] = t.invert()
	}
	return out
}

// Div is Concat(other.Invert()) — "a/b" is "a . b-1" read as one term
// list, matching how BinaryNode.Eval folds a division node.
func (u Unit) Div(other Unit) Unit {
	return u.Concat(other.Invert())
}

// Mul is an alias for Concat, named for the measurement-facing API.
func (u Unit) Mul(other Unit) Unit {
	return u.Concat(other)
}

// Scalar folds the unit down to a single magnitude relative to its base
// atoms. It errors if a special atom appears alongside other terms or
// with an exponent other than 1. A unit that is one special term folds to
// its conversion applied to the atom's definition value (274.15 for Cel),
// not to any measured value; Measurement.ConvertTo converts measured
// values of special units.
func (u Unit) Scalar() (float64, error) {
	mag := 1.0
	for _, t := range u {
		if t.isSpecial() && len(u) != 1 {
			return 0, &ErrSpecialUnitComposition{Unit: u.String()}
		}
		s, err := t.scalar()
		if err != nil {
			return 0, err
		}
		mag *= s
	}
	return mag, nil
}

// Magnitude folds the unit down to a single value re-expressed through
// each atom's own calculate_magnitude reduction (spec §4.C) — Scalar's
// counterpart, differing only for special atoms (FromBase instead of
// ToBase).
func (u Unit) Magnitude() (float64, error) {
	mag := 1.0
	for _, t := range u {
		if t.isSpecial() && len(u) != 1 {
			return 0, &ErrSpecialUnitComposition{Unit: u.String()}
		}
		s, err := t.magnitude()
		if err != nil {
			return 0, err
		}
		mag *= s
	}
	return mag, nil
}

// Composition folds the unit down to its dimension vector.
func (u Unit) Composition() (Composition, error) {
	var comp Composition
	for _, t := range u {
		c, err := t.composition()
		if err != nil {
			return Composition{}, err
		}
		comp = comp.Add(c)
	}
	return comp, nil
}

// arbitraryAtom returns the single arbitrary atom named by u, if any —
// used by Compatible to implement the "same arbitrary atom" carve-out
// (two [IU] units are compatible with each other, but not with any other
// arbitrary unit, regardless of shared Composition).
func (u Unit) arbitraryAtom() *Atom {
	for _, t := range u {
		if t.Kind == TermUnit && t.Atom.Arbitrary {
			return t.Atom
		}
	}
	return nil
}

// Compatible reports whether u and other could be converted between one
// another: same Composition, and if either names an arbitrary atom, both
// must name the same one.
func (u Unit) Compatible(other Unit) (bool, error) {
	a, err := u.Composition()
	if err != nil {
		return false, err
	}
	b, err := other.Composition()
	if err != nil {
		return false, err
	}
	if a != b {
		return false, nil
	}

	ua, ob := u.arbitraryAtom(), other.arbitraryAtom()
	if ua == nil && ob == nil {
		return true, nil
	}
	return ua == ob, nil
}

// String renders the unit in expression form. Formatter.Format implements
// the full rendering contract (expression vs. reduced); String is the
// fmt.Stringer convenience used by tests and error messages.
func (u Unit) String() string {
	s, err := (DefaultFormatter{}).Format(u, FormatOptions{})
	if err != nil {
		return fmt.Sprintf("<invalid unit: %v>", err)
	}
	return s
}
