package ucum

import "math"

// DefinitionKind selects which of the four definition shapes an atom
// carries, per spec §4.A/§9 and grounded on
// original_source/crates/api/src/atom/definition/consts.rs's
// Value/ValueTerms/ValueSpecial/ValueTermsSpecial constructors.
type DefinitionKind int

const (
	// DefinitionValue is a bare magnitude with no further structure — the
	// seven base atoms, and dimensionless constants like "10*".
	DefinitionValue DefinitionKind = iota
	// DefinitionValueTerms is a magnitude times a term expression, e.g.
	// Hour = 60 Minute.
	DefinitionValueTerms
	// DefinitionValueSpecial is a magnitude plus a non-linear conversion
	// to and from the atom's reference scale, e.g. Neper.
	DefinitionValueSpecial
	// DefinitionValueTermsSpecial combines both: a term expression for
	// the atom's dimension, plus a non-linear scale conversion.
	DefinitionValueTermsSpecial
)

// SpecialConversion is a named non-linear scale conversion. ToBase maps a
// value expressed in the special unit's own scale onto the linear
// reference scale (e.g. Celsius to Kelvin: v+273.15); FromBase is its
// inverse. The naming follows wise_units' own convention, verified here
// against spec's Fahrenheit fixture (65 [degF] -> 18.333... Cel).
type SpecialConversion struct {
	Name     string
	ToBase   func(v float64) float64
	FromBase func(v float64) float64
}

var (
	SpecialCelsius = SpecialConversion{
		Name:     "Celsius",
		ToBase:   func(v float64) float64 { return v + 273.15 },
		FromBase: func(v float64) float64 { return v - 273.15 },
	}
	SpecialFahrenheit = SpecialConversion{
		Name:     "Fahrenheit",
		ToBase:   func(v float64) float64 { return (v + 459.67) * (5.0 / 9.0) },
		FromBase: func(v float64) float64 { return v*(9.0/5.0) - 459.67 },
	}
	SpecialNeper = SpecialConversion{
		Name:     "Neper",
		ToBase:   func(v float64) float64 { return math.Exp(v) },
		FromBase: func(v float64) float64 { return math.Log(v) },
	}
	SpecialBel = SpecialConversion{
		Name:     "Bel",
		ToBase:   func(v float64) float64 { return math.Pow(10, v) },
		FromBase: func(v float64) float64 { return math.Log10(v) },
	}
	SpecialBelVolt        = namedBel("Bel[V]")
	SpecialBelMillivolt   = namedBel("Bel[mV]")
	SpecialBelMicrovolt   = namedBel("Bel[uV]")
	SpecialBel10Nanovolt  = namedBel("Bel[10nV]")
	SpecialBelWatt        = namedBel("Bel[W]")
	SpecialBelKilowatt    = namedBel("Bel[kW]")
	SpecialPH             = SpecialConversion{
		Name:     "pH",
		ToBase:   func(v float64) float64 { return math.Pow(10, -v) },
		FromBase: func(v float64) float64 { return -math.Log10(v) },
	}
	SpecialPrismDiopter = SpecialConversion{
		Name:     "PrismDiopter",
		ToBase:   func(v float64) float64 { return math.Tan(v*math.Pi/180) * 100 },
		FromBase: func(v float64) float64 { return math.Atan(v/100) * 180 / math.Pi },
	}
	SpecialPercentSlope = SpecialConversion{
		Name:     "PercentOfSlope",
		ToBase:   func(v float64) float64 { return math.Atan(v / 100) },
		FromBase: func(v float64) float64 { return math.Tan(v) * 100 },
	}
	SpecialHomeopathicX = homeopathic("Homeopathic-X", 10)
	SpecialHomeopathicC = homeopathic("Homeopathic-C", 100)
	SpecialHomeopathicM = homeopathic("Homeopathic-M", 1000)
	SpecialHomeopathicQ = homeopathic("Homeopathic-Q", 50000)
	SpecialBitLogarithmusDualis = SpecialConversion{
		Name:     "BitLogarithmusDualis",
		ToBase:   func(v float64) float64 { return math.Pow(2, v) },
		FromBase: func(v float64) float64 { return math.Log2(v) },
	}
)

// namedBel builds a Bel-family conversion distinguished only by name — all
// Bel-with-reference atoms (B[V], B[W], ...) share the same log10 shape
// because a Bel reading is a dimensionless ratio against the reference
// quantity, never the reference quantity itself.
func namedBel(name string) SpecialConversion {
	return SpecialConversion{
		Name:     name,
		ToBase:   SpecialBel.ToBase,
		FromBase: SpecialBel.FromBase,
	}
}

// homeopathic builds one of the four decimal/centesimal/millesimal/
// quinquagintamillesimal potency scales: v applications of a 1/base
// dilution, expressed logarithmically.
func homeopathic(name string, base float64) SpecialConversion {
	logBase := math.Log(base)
	return SpecialConversion{
		Name:     name,
		ToBase:   func(v float64) float64 { return math.Pow(base, -v) },
		FromBase: func(v float64) float64 { return -math.Log(v) / logBase },
	}
}

// Definition is the sum type describing how an atom relates to the base
// dimensions and, for non-base atoms, to other atoms.
type Definition struct {
	Kind     DefinitionKind
	Value    float64
	Terms    []Term
	Special  SpecialConversion
}

func ValueDefinition(value float64) Definition {
	return Definition{Kind: DefinitionValue, Value: value}
}

func ValueTermsDefinition(value float64, terms ...Term) Definition {
	return Definition{Kind: DefinitionValueTerms, Value: value, Terms: terms}
}

func ValueSpecialDefinition(value float64, special SpecialConversion) Definition {
	return Definition{Kind: DefinitionValueSpecial, Value: value, Special: special}
}

func ValueTermsSpecialDefinition(value float64, special SpecialConversion, terms ...Term) Definition {
	return Definition{Kind: DefinitionValueTermsSpecial, Value: value, Terms: terms, Special: special}
}
