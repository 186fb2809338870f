package ucum

import (
	"fmt"
	"math"
	"sync"
)

// TermKind distinguishes the three shapes a grammar "component" can take:
// a prefixed, exponentiated atom; a bare numeric factor; or a bare
// annotation with no atom at all (spec §3's component production).
type TermKind int

const (
	TermUnit TermKind = iota
	TermFactor
	TermAnnotationOnly
)

// Term is one multiplicative component of a Unit. A Unit is a flat
// sequence of Terms rather than a single scalar+dimension pair, so that
// annotations and the exact atoms used survive for expression()/
// expression_reduced() rendering (spec §3's invariant that a Unit
// remembers how it was written, not just what it reduces to).
type Term struct {
	Kind       TermKind
	Prefix     Prefix
	Atom       *Atom
	Exponent   int
	Factor     float64
	Annotation string
}

// NewUnitTerm builds a plain prefixed-atom term with exponent 1.
func NewUnitTerm(prefix Prefix, atom *Atom) Term {
	return Term{Kind: TermUnit, Prefix: prefix, Atom: atom, Exponent: 1}
}

// atomRef is the resolved (magnitude, composition) pair for an atom,
// memoized per spec §9's suggestion that implementations may cache atom
// scalars at first use — grounded on the sync.RWMutex-guarded cache
// pattern in the retrieved Google CQL UCUM helper.
type atomRef struct {
	magnitude   float64
	composition Composition
}

var (
	atomRefMu    sync.RWMutex
	atomRefCache = map[*Atom]atomRef{}
)

// resolveAtom computes an atom's magnitude relative to the base atoms and
// its Composition, recursing through ValueTerms/ValueTermsSpecial
// definitions. Base atoms terminate the recursion directly.
func resolveAtom(atom *Atom) (atomRef, error) {
	atomRefMu.RLock()
	ref, ok := atomRefCache[atom]
	atomRefMu.RUnlock()
	if ok {
		return ref, nil
	}

	ref, err := computeAtomRef(atom)
	if err != nil {
		return atomRef{}, err
	}

	atomRefMu.Lock()
	atomRefCache[atom] = ref
	atomRefMu.Unlock()
	return ref, nil
}

func computeAtomRef(atom *Atom) (atomRef, error) {
	if atom.IsBaseAtom {
		var c Composition
		c[atom.BaseAxis] = 1
		return atomRef{magnitude: 1, composition: c}, nil
	}

	switch atom.Definition.Kind {
	case DefinitionValue:
		return atomRef{magnitude: atom.Definition.Value, composition: Composition{}}, nil

	case DefinitionValueTerms:
		mag, comp, err := evalTerms(atom.Definition.Terms)
		if err != nil {
			return atomRef{}, fmt.Errorf("resolving %s: %w", atom.Symbol, err)
		}
		return atomRef{magnitude: atom.Definition.Value * mag, composition: comp}, nil

	case DefinitionValueSpecial:
		mag := atom.Definition.Special.ToBase(atom.Definition.Value)
		return atomRef{magnitude: mag, composition: Composition{}}, nil

	case DefinitionValueTermsSpecial:
		_, comp, err := evalTerms(atom.Definition.Terms)
		if err != nil {
			return atomRef{}, fmt.Errorf("resolving %s: %w", atom.Symbol, err)
		}
		mag := atom.Definition.Special.ToBase(atom.Definition.Value)
		return atomRef{magnitude: mag, composition: comp}, nil

	default:
		return atomRef{}, fmt.Errorf("atom %s: unrecognized definition kind", atom.Symbol)
	}
}

// atomMagnitudeMu/atomMagnitudeCache memoize calculate_magnitude the same
// way atomRefMu/atomRefCache memoize atom_scalar — a separate cache
// because the two recursions diverge for special atoms (ToBase vs
// FromBase) and must not collide on the same *Atom key.
var (
	atomMagnitudeMu    sync.RWMutex
	atomMagnitudeCache = map[*Atom]atomRef{}
)

// resolveAtomMagnitude is magnitude's counterpart to resolveAtom.
func resolveAtomMagnitude(atom *Atom) (atomRef, error) {
	atomMagnitudeMu.RLock()
	ref, ok := atomMagnitudeCache[atom]
	atomMagnitudeMu.RUnlock()
	if ok {
		return ref, nil
	}

	ref, err := computeAtomMagnitude(atom)
	if err != nil {
		return atomRef{}, err
	}

	atomMagnitudeMu.Lock()
	atomMagnitudeCache[atom] = ref
	atomMagnitudeMu.Unlock()
	return ref, nil
}

// computeAtomMagnitude is computeAtomRef's counterpart for
// calculate_magnitude (spec §4.C): identical recursive shape, except a
// special atom applies its FromBase conversion where computeAtomRef
// applies ToBase.
func computeAtomMagnitude(atom *Atom) (atomRef, error) {
	if atom.IsBaseAtom {
		var c Composition
		c[atom.BaseAxis] = 1
		return atomRef{magnitude: 1, composition: c}, nil
	}

	switch atom.Definition.Kind {
	case DefinitionValue:
		return atomRef{magnitude: atom.Definition.Value, composition: Composition{}}, nil

	case DefinitionValueTerms:
		mag, comp, err := evalTermsMagnitude(atom.Definition.Terms)
		if err != nil {
			return atomRef{}, fmt.Errorf("resolving %s: %w", atom.Symbol, err)
		}
		return atomRef{magnitude: atom.Definition.Value * mag, composition: comp}, nil

	case DefinitionValueSpecial:
		mag := atom.Definition.Special.FromBase(atom.Definition.Value)
		return atomRef{magnitude: mag, composition: Composition{}}, nil

	case DefinitionValueTermsSpecial:
		_, comp, err := evalTermsMagnitude(atom.Definition.Terms)
		if err != nil {
			return atomRef{}, fmt.Errorf("resolving %s: %w", atom.Symbol, err)
		}
		mag := atom.Definition.Special.FromBase(atom.Definition.Value)
		return atomRef{magnitude: mag, composition: comp}, nil

	default:
		return atomRef{}, fmt.Errorf("atom %s: unrecognized definition kind", atom.Symbol)
	}
}

// evalTermsMagnitude is evalTerms' counterpart for calculate_magnitude.
func evalTermsMagnitude(terms []Term) (float64, Composition, error) {
	mag := 1.0
	var comp Composition
	for _, t := range terms {
		s, err := t.magnitude()
		if err != nil {
			return 0, Composition{}, err
		}
		c, err := t.composition()
		if err != nil {
			return 0, Composition{}, err
		}
		mag *= s
		comp = comp.Add(c)
	}
	return mag, comp, nil
}

// evalTerms folds a term expression (e.g. the three terms defining
// Newton) into a single magnitude and composition.
func evalTerms(terms []Term) (float64, Composition, error) {
	mag := 1.0
	var comp Composition
	for _, t := range terms {
		s, err := t.scalar()
		if err != nil {
			return 0, Composition{}, err
		}
		c, err := t.composition()
		if err != nil {
			return 0, Composition{}, err
		}
		mag *= s
		comp = comp.Add(c)
	}
	return mag, comp, nil
}

// scalar returns this term's multiplicative contribution, ignoring any
// annotation text.
func (t Term) scalar() (float64, error) {
	switch t.Kind {
	case TermFactor:
		return math.Pow(t.Factor, float64(t.Exponent)), nil
	case TermAnnotationOnly:
		return 1, nil
	case TermUnit:
		if t.Atom.IsSpecial() && t.Exponent != 1 {
			return 0, &ErrSpecialUnitComposition{Unit: t.Atom.Symbol}
		}
		ref, err := resolveAtom(t.Atom)
		if err != nil {
			return 0, err
		}
		base := t.Prefix.Factor() * ref.magnitude
		return math.Pow(base, float64(t.Exponent)), nil
	default:
		return 0, fmt.Errorf("term: unrecognized kind %d", t.Kind)
	}
}

// magnitude returns this term's calculate_magnitude contribution (spec
// §4.C) — scalar's counterpart, using each special atom's FromBase
// conversion in place of ToBase.
func (t Term) magnitude() (float64, error) {
	switch t.Kind {
	case TermFactor:
		return math.Pow(t.Factor, float64(t.Exponent)), nil
	case TermAnnotationOnly:
		return 1, nil
	case TermUnit:
		if t.Atom.IsSpecial() && t.Exponent != 1 {
			return 0, &ErrSpecialUnitComposition{Unit: t.Atom.Symbol}
		}
		ref, err := resolveAtomMagnitude(t.Atom)
		if err != nil {
			return 0, err
		}
		base := t.Prefix.Factor() * ref.magnitude
		return math.Pow(base, float64(t.Exponent)), nil
	default:
		return 0, fmt.Errorf("term: unrecognized kind %d", t.Kind)
	}
}

// composition returns this term's dimensional contribution.
func (t Term) composition() (Composition, error) {
	if t.Kind != TermUnit {
		return Composition{}, nil
	}
	ref, err := resolveAtom(t.Atom)
	if err != nil {
		return Composition{}, err
	}
	return ref.composition.Scale(t.Exponent), nil
}

// invert negates the term's exponent, used to implement Unit division by
// concatenating the divisor's inverted terms.
func (t Term) invert() Term {
	t.Exponent = -t.Exponent
	return t
}

// isSpecial reports whether this term names a non-linear atom.
func (t Term) isSpecial() bool {
	return t.Kind == TermUnit && t.Atom.IsSpecial()
}
