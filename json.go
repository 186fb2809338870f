package ucum

import (
	"encoding/json"
	"fmt"
)

// termJSON mirrors the wire shape spec §6 assigns to a Term: the atom and
// prefix by symbol (so a decoded Term can be re-resolved against the
// catalog), plus the exponent, factor, and annotation fields.
type termJSON struct {
	Kind       string  `json:"kind"`
	Prefix     string  `json:"prefix,omitempty"`
	Atom       string  `json:"atom,omitempty"`
	Exponent   int     `json:"exponent,omitempty"`
	Factor     float64 `json:"factor,omitempty"`
	Annotation string  `json:"annotation,omitempty"`
}

func (t Term) toJSON() termJSON {
	out := termJSON{Exponent: t.Exponent, Annotation: t.Annotation}
	switch t.Kind {
	case TermUnit:
		out.Kind = "unit"
		out.Atom = t.Atom.Symbol
		if t.Prefix != PrefixNone {
			out.Prefix = t.Prefix.Symbol()
		}
	case TermFactor:
		out.Kind = "factor"
		out.Factor = t.Factor
	case TermAnnotationOnly:
		out.Kind = "annotation"
	}
	return out
}

func termFromJSON(j termJSON, ctx *StandardContext) (Term, error) {
	exponent := j.Exponent
	if exponent == 0 {
		exponent = 1
	}

	switch j.Kind {
	case "unit":
		atom, ok := ctx.lookupAtom(j.Atom)
		if !ok {
			return Term{}, &UnknownAtomSymbol{Symbol: j.Atom}
		}
		prefix := PrefixNone
		if j.Prefix != "" {
			found := false
			for _, p := range allPrefixes {
				if p.Symbol() == j.Prefix {
					prefix = p
					found = true
					break
				}
			}
			if !found {
				return Term{}, &UnknownPrefixSymbol{Symbol: j.Prefix}
			}
		}
		return Term{Kind: TermUnit, Prefix: prefix, Atom: atom, Exponent: exponent, Annotation: j.Annotation}, nil

	case "factor":
		return Term{Kind: TermFactor, Factor: j.Factor, Exponent: exponent, Annotation: j.Annotation}, nil

	case "annotation":
		return Term{Kind: TermAnnotationOnly, Annotation: j.Annotation, Exponent: exponent}, nil

	default:
		return Term{}, fmt.Errorf("ucum: unrecognized term kind %q", j.Kind)
	}
}

// unitJSON mirrors the wire shape for a Unit: its term list plus, for
// convenience and round-trip-without-a-catalog-lookup use cases, the
// canonical expression string.
type unitJSON struct {
	Expression string     `json:"expression"`
	Terms      []termJSON `json:"terms"`
}

// MarshalJSON implements json.Marshaler, encoding the unit as its term
// list plus a human-readable expression string (spec §6).
func (u Unit) MarshalJSON() ([]byte, error) {
	terms := make([]termJSON, len(u))
	for i, t := range u {
		terms[i] = t.toJSON()
	}
	return json.Marshal(unitJSON{Expression: u.String(), Terms: terms})
}

// UnmarshalJSON implements json.Unmarshaler. It prefers the term list when
// present (exact, catalog-independent of any re-parse of Expression) and
// falls back to parsing Expression when Terms is empty.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var j unitJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}

	if len(j.Terms) == 0 {
		if j.Expression == "" {
			*u = UnitUnity
			return nil
		}
		parsed, err := Parse(j.Expression)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	}

	ctx := NewStandardContext()
	terms := make(Unit, len(j.Terms))
	for i, tj := range j.Terms {
		t, err := termFromJSON(tj, ctx)
		if err != nil {
			return err
		}
		terms[i] = t
	}
	*u = terms
	return nil
}

// measurementJSON mirrors spec §6's Measurement wire shape: a bare numeric
// value alongside its unit.
type measurementJSON struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// MarshalJSON implements json.Marshaler for Measurement.
func (m Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(measurementJSON{Value: m.Value, Unit: m.Unit})
}

// UnmarshalJSON implements json.Unmarshaler for Measurement.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	var j measurementJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	m.Value = j.Value
	m.Unit = j.Unit
	return nil
}
