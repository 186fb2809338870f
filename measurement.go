package ucum

import "fmt"

// Measurement pairs a numeric value with the Unit it is expressed in —
// spec §4.D's façade over the term algebra. Method names
// (Equal/Compare/Add/Subtract/Multiply/Divide) are grounded on
// _examples/robertoAraneda-gofhir/pkg/fhirpath/types/quantity.go's
// Quantity type, re-typed from decimal.Decimal to float64 per spec's
// explicit no-arbitrary-precision Non-goal.
type Measurement struct {
	Value float64
	Unit  Unit
}

// NewMeasurement parses expr and pairs it with value.
func NewMeasurement(value float64, expr string) (Measurement, error) {
	u, err := Parse(expr)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: value, Unit: u}, nil
}

// ConvertTo re-expresses the measurement in terms of target, per spec
// §4.D. Compatible units (same Composition, and matching arbitrary-atom
// identity if either is arbitrary) convert; incompatible ones error.
func (m Measurement) ConvertTo(target Unit) (Measurement, error) {
	compatible, err := m.Unit.Compatible(target)
	if err != nil {
		return Measurement{}, err
	}
	if !compatible {
		return Measurement{}, &IncompatibleUnitTypes{LHS: m.Unit.String(), RHS: target.String()}
	}

	if len(m.Unit) == 1 && m.Unit[0].isSpecial() && len(target) == 1 && target[0].isSpecial() {
		baseValue := m.Unit[0].Atom.Definition.Special.ToBase(m.Value)
		newValue := target[0].Atom.Definition.Special.FromBase(baseValue)
		return Measurement{Value: newValue, Unit: target}, nil
	}
	if len(m.Unit) == 1 && m.Unit[0].isSpecial() {
		baseValue := m.Unit[0].Atom.Definition.Special.ToBase(m.Value)
		targetScale, err := target.Scalar()
		if err != nil {
			return Measurement{}, err
		}
		return Measurement{Value: baseValue / targetScale, Unit: target}, nil
	}
	if len(target) == 1 && target[0].isSpecial() {
		srcScale, err := m.Unit.Scalar()
		if err != nil {
			return Measurement{}, err
		}
		baseValue := m.Value * srcScale
		newValue := target[0].Atom.Definition.Special.FromBase(baseValue)
		return Measurement{Value: newValue, Unit: target}, nil
	}

	srcScale, err := m.Unit.Scalar()
	if err != nil {
		return Measurement{}, err
	}
	dstScale, err := target.Scalar()
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value * srcScale / dstScale, Unit: target}, nil
}

// ConvertToExpr is a convenience wrapper around ConvertTo that parses its
// target from a UCUM expression.
func (m Measurement) ConvertToExpr(expr string) (Measurement, error) {
	target, err := Parse(expr)
	if err != nil {
		return Measurement{}, err
	}
	return m.ConvertTo(target)
}

// Scalar returns the measurement's value expressed against the unit's
// base atoms — the reference scale used internally by ConvertTo and
// exposed for callers that want the raw base-scale number.
func (m Measurement) Scalar() (float64, error) {
	if len(m.Unit) == 1 && m.Unit[0].isSpecial() {
		return m.Unit[0].Atom.Definition.Special.ToBase(m.Value), nil
	}
	scale, err := m.Unit.Scalar()
	if err != nil {
		return 0, err
	}
	return m.Value * scale, nil
}

// Magnitude returns the measurement's value re-expressed in the unit's
// own terms (spec §4.D) — Scalar's counterpart, substituting each special
// atom's FromBase conversion for ToBase.
func (m Measurement) Magnitude() (float64, error) {
	if len(m.Unit) == 1 && m.Unit[0].isSpecial() {
		return m.Unit[0].Atom.Definition.Special.FromBase(m.Value), nil
	}
	mag, err := m.Unit.Magnitude()
	if err != nil {
		return 0, err
	}
	return m.Value * mag, nil
}

// MulScalar scales the measurement's value by factor, keeping its unit.
func (m Measurement) MulScalar(factor float64) Measurement {
	return Measurement{Value: m.Value * factor, Unit: m.Unit}
}

// DivScalar scales the measurement's value by 1/factor, keeping its unit.
func (m Measurement) DivScalar(factor float64) Measurement {
	return Measurement{Value: m.Value / factor, Unit: m.Unit}
}

// Equal reports whether two measurements denote the same quantity:
// compatible units and equal scalars once converted to the same scale.
func (m Measurement) Equal(other Measurement) (bool, error) {
	compatible, err := m.Unit.Compatible(other.Unit)
	if err != nil || !compatible {
		return false, err
	}
	a, err := m.Scalar()
	if err != nil {
		return false, err
	}
	b, err := other.Scalar()
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// Equivalent is Equal but compares unit expressions textually first —
// two measurements with identical annotation-bearing unit strings and
// equal values are equivalent without needing a scalar comparison at all.
func (m Measurement) Equivalent(other Measurement) (bool, error) {
	if m.Unit.String() == other.Unit.String() && m.Value == other.Value {
		return true, nil
	}
	return m.Equal(other)
}

// Compare orders two measurements on the same reference scale: -1, 0, 1.
// It errors if the units are not Compatible.
func (m Measurement) Compare(other Measurement) (int, error) {
	compatible, err := m.Unit.Compatible(other.Unit)
	if err != nil {
		return 0, err
	}
	if !compatible {
		return 0, &IncompatibleUnitTypes{LHS: m.Unit.String(), RHS: other.Unit.String()}
	}
	a, err := m.Scalar()
	if err != nil {
		return 0, err
	}
	b, err := other.Scalar()
	if err != nil {
		return 0, err
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// Add requires compatible units and returns their sum expressed in m's
// own unit.
func (m Measurement) Add(other Measurement) (Measurement, error) {
	converted, err := other.ConvertTo(m.Unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value + converted.Value, Unit: m.Unit}, nil
}

// Subtract requires compatible units and returns their difference
// expressed in m's own unit.
func (m Measurement) Subtract(other Measurement) (Measurement, error) {
	converted, err := other.ConvertTo(m.Unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{Value: m.Value - converted.Value, Unit: m.Unit}, nil
}

// Multiply combines two measurements' units (special units are rejected,
// since their product has no linear meaning) and multiplies their values.
func (m Measurement) Multiply(other Measurement) (Measurement, error) {
	if hasSpecial(m.Unit) || hasSpecial(other.Unit) {
		return Measurement{}, &ErrSpecialUnitComposition{Unit: m.Unit.String() + "." + other.Unit.String()}
	}
	return Measurement{Value: m.Value * other.Value, Unit: m.Unit.Mul(other.Unit)}, nil
}

// Divide combines two measurements' units and divides their values.
func (m Measurement) Divide(other Measurement) (Measurement, error) {
	if hasSpecial(m.Unit) || hasSpecial(other.Unit) {
		return Measurement{}, &ErrSpecialUnitComposition{Unit: m.Unit.String() + "/" + other.Unit.String()}
	}
	if other.Value == 0 {
		return Measurement{}, fmt.Errorf("ucum: division by zero measurement")
	}
	return Measurement{Value: m.Value / other.Value, Unit: m.Unit.Div(other.Unit)}, nil
}

func hasSpecial(u Unit) bool {
	for _, t := range u {
		if t.isSpecial() {
			return true
		}
	}
	return false
}

// String renders "<value> <unit>", e.g. "65 [degF]".
func (m Measurement) String() string {
	return fmt.Sprintf("%g %s", m.Value, m.Unit.String())
}
