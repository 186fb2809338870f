package ucum

import "strings"

// catalog is the static atom table (spec §1 treats the catalog as fixed
// data, not something callers extend at runtime). It is deliberately
// representative rather than exhaustive: one or more atoms from every
// classification spec §8 names, enough to exercise every grammar
// production and every named special-conversion rule, without attempting
// the full ~300-entry UCUM table.
//
// Entries are grounded on original_source/crates/api/src/atom/
// definition/consts.rs for the conversion shapes, and on the
// case-insensitive fallback lookup pattern in
// _examples/robertoAraneda-gofhir/pkg/ucum/ucum.go.
var catalog = map[string]*Atom{}
var catalogCI = map[string]*Atom{}

func register(a *Atom) *Atom {
	catalog[a.Symbol] = a
	key := strings.ToUpper(a.Symbol)
	if existing, ok := catalogCI[key]; !ok || len(a.Symbol) < len(existing.Symbol) {
		catalogCI[key] = a
	}
	return a
}

func lookupAtom(symbol string) (*Atom, bool) {
	a, ok := catalog[symbol]
	return a, ok
}

func lookupAtomCI(symbol string) (*Atom, bool) {
	a, ok := catalogCI[strings.ToUpper(symbol)]
	return a, ok
}

func baseAtom(symbol, name string, axis Axis, prop Property) *Atom {
	return register(&Atom{
		Symbol:         symbol,
		PrintSymbol:    symbol,
		Name:           name,
		Classification: ClassificationSI,
		Property:       prop,
		Metric:         true,
		IsBaseAtom:     true,
		BaseAxis:       axis,
	})
}

func derivedAtom(symbol, name string, class Classification, prop Property, metric bool, def Definition) *Atom {
	return register(&Atom{
		Symbol:         symbol,
		PrintSymbol:    symbol,
		Name:           name,
		Classification: class,
		Property:       prop,
		Metric:         metric,
		Definition:     def,
	})
}

func arbitraryAtom(symbol, name string, class Classification) *Atom {
	return register(&Atom{
		Symbol:         symbol,
		PrintSymbol:    symbol,
		Name:           name,
		Classification: class,
		Property:       PropertyArbitrary,
		Arbitrary:      true,
		Definition:     ValueDefinition(1),
	})
}

// Base atoms: m, s, g, rad, K, C, cd — spec's seven, in spec's axis order.
var (
	AtomMeter   = baseAtom("m", "meter", AxisLength, PropertyLength)
	AtomSecond  = baseAtom("s", "second", AxisTime, PropertyTime)
	AtomGram    = baseAtom("g", "gram", AxisMass, PropertyMass)
	AtomRadian  = baseAtom("rad", "radian", AxisPlaneAngle, PropertyPlaneAngle)
	AtomKelvin  = baseAtom("K", "kelvin", AxisTemperature, PropertyTemperature)
	AtomCoulomb = baseAtom("C", "coulomb", AxisElectricCharge, PropertyElectricCharge)
	AtomCandela = baseAtom("cd", "candela", AxisLuminousIntensity, PropertyLuminousIntensity)
)

// Dimensionless / non-metric foundational atoms.
var (
	AtomTen       = derivedAtom("10*", "the number ten", ClassificationDimensionless, PropertyDimensionless, false, ValueDefinition(10))
	AtomTenCaret  = derivedAtom("10^", "the number ten", ClassificationDimensionless, PropertyDimensionless, false, ValueDefinition(10))
	AtomPercent   = derivedAtom("%", "percent", ClassificationDimensionless, PropertyDimensionless, false, ValueDefinition(0.01))
	AtomPi        = derivedAtom("[pi]", "the number pi", ClassificationDimensionless, PropertyDimensionless, false, ValueDefinition(3.14159265358979))
)

// SI derived units.
var (
	AtomSteradian = derivedAtom("sr", "steradian", ClassificationSI, PropertySolidAngle, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Atom: AtomRadian, Exponent: 2}))
	AtomHertz = derivedAtom("Hz", "hertz", ClassificationSI, PropertyFrequency, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -1}))
	AtomNewton = derivedAtom("N", "newton", ClassificationSI, PropertyForce, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Prefix: PrefixKilo, Atom: AtomGram, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomMeter, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -2}))
	AtomPascal = derivedAtom("Pa", "pascal", ClassificationSI, PropertyPressure, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomNewton, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomMeter, Exponent: -2}))
	AtomJoule = derivedAtom("J", "joule", ClassificationSI, PropertyEnergy, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomNewton, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomMeter, Exponent: 1}))
	AtomWatt = derivedAtom("W", "watt", ClassificationSI, PropertyPower, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomJoule, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -1}))
	AtomAmpere = derivedAtom("A", "ampere", ClassificationSI, PropertyElectricCurrent, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomCoulomb, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -1}))
	AtomVolt = derivedAtom("V", "volt", ClassificationSI, PropertyElectricPotential, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomJoule, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomCoulomb, Exponent: -1}))
	AtomFarad = derivedAtom("F", "farad", ClassificationSI, PropertyElectricCapacitance, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomCoulomb, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomVolt, Exponent: -1}))
	AtomOhm = derivedAtom("Ohm", "ohm", ClassificationSI, PropertyElectricResistance, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomVolt, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomAmpere, Exponent: -1}))
	AtomSiemens = derivedAtom("S", "siemens", ClassificationSI, PropertyElectricConductance, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Atom: AtomOhm, Exponent: -1}))
	AtomWeber = derivedAtom("Wb", "weber", ClassificationSI, PropertyMagneticFlux, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomVolt, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSecond, Exponent: 1}))
	AtomTesla = derivedAtom("T", "tesla", ClassificationSI, PropertyMagneticFluxDensity, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomWeber, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomMeter, Exponent: -2}))
	AtomHenry = derivedAtom("H", "henry", ClassificationSI, PropertyInductance, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomWeber, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomAmpere, Exponent: -1}))
	AtomLumen = derivedAtom("lm", "lumen", ClassificationSI, PropertyLuminousFlux, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomCandela, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSteradian, Exponent: 1}))
	AtomLux = derivedAtom("lx", "lux", ClassificationSI, PropertyIlluminance, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomLumen, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomMeter, Exponent: -2}))
	AtomBecquerel = derivedAtom("Bq", "becquerel", ClassificationSI, PropertyRadioactivity, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -1}))
	AtomGray = derivedAtom("Gy", "gray", ClassificationSI, PropertyAbsorbedDose, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomJoule, Exponent: 1},
			Term{Kind: TermUnit, Prefix: PrefixKilo, Atom: AtomGram, Exponent: -1}))
	AtomSievert = derivedAtom("Sv", "sievert", ClassificationSI, PropertyDoseEquivalent, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomJoule, Exponent: 1},
			Term{Kind: TermUnit, Prefix: PrefixKilo, Atom: AtomGram, Exponent: -1}))
	AtomMole = derivedAtom("mol", "mole", ClassificationSI, PropertyAmountOfSubstance, true,
		ValueTermsDefinition(6.0221367, Term{Kind: TermUnit, Atom: AtomTen, Exponent: 23}))
	AtomKatal = derivedAtom("kat", "katal", ClassificationSI, PropertyCatalyticActivity, true,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomMole, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -1}))
	AtomLiter = derivedAtom("L", "liter", ClassificationSI, PropertyVolume, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Prefix: PrefixDeci, Atom: AtomMeter, Exponent: 3}))
	AtomDegree = derivedAtom("deg", "degree of arc", ClassificationISO1000, PropertyPlaneAngle, false,
		ValueTermsDefinition(3.14159265358979/180, Term{Kind: TermUnit, Atom: AtomRadian, Exponent: 1}))
	AtomGon = derivedAtom("gon", "gon", ClassificationISO1000, PropertyPlaneAngle, false,
		ValueTermsDefinition(3.14159265358979/200, Term{Kind: TermUnit, Atom: AtomRadian, Exponent: 1}))
)

// Time units outside the base second.
var (
	AtomMinute = derivedAtom("min", "minute", ClassificationISO1000, PropertyTime, false,
		ValueTermsDefinition(60, Term{Kind: TermUnit, Atom: AtomSecond, Exponent: 1}))
	AtomHour = derivedAtom("h", "hour", ClassificationISO1000, PropertyTime, false,
		ValueTermsDefinition(60, Term{Kind: TermUnit, Atom: AtomMinute, Exponent: 1}))
	AtomDay = derivedAtom("d", "day", ClassificationISO1000, PropertyTime, false,
		ValueTermsDefinition(24, Term{Kind: TermUnit, Atom: AtomHour, Exponent: 1}))
	AtomWeek = derivedAtom("wk", "week", ClassificationISO1000, PropertyTime, false,
		ValueTermsDefinition(7, Term{Kind: TermUnit, Atom: AtomDay, Exponent: 1}))
	AtomYear = derivedAtom("a", "year (Julian)", ClassificationISO1000, PropertyTime, false,
		ValueTermsDefinition(365.25, Term{Kind: TermUnit, Atom: AtomDay, Exponent: 1}))
	AtomMonth = derivedAtom("mo", "month (mean Julian)", ClassificationISO1000, PropertyTime, false,
		ValueTermsDefinition(1.0/12.0, Term{Kind: TermUnit, Atom: AtomYear, Exponent: 1}))
)

// Mass / energy constants.
var (
	AtomTonne = derivedAtom("t", "tonne", ClassificationISO1000, PropertyMass, true,
		ValueTermsDefinition(1e6, Term{Kind: TermUnit, Atom: AtomGram, Exponent: 1}))
	AtomAtomicMassUnit = derivedAtom("u", "unified atomic mass unit", ClassificationISO1000, PropertyMass, true,
		ValueTermsDefinition(1.6605402e-24, Term{Kind: TermUnit, Atom: AtomGram, Exponent: 1}))
	AtomElectronVolt = derivedAtom("eV", "electronvolt", ClassificationISO1000, PropertyEnergy, true,
		ValueTermsDefinition(1.60217733e-19, Term{Kind: TermUnit, Atom: AtomJoule, Exponent: 1}))
)

// US customary units.
var (
	AtomInchUS = derivedAtom("[in_i]", "inch (international)", ClassificationUSCustomary, PropertyLength, false,
		ValueTermsDefinition(2.54, Term{Kind: TermUnit, Prefix: PrefixCenti, Atom: AtomMeter, Exponent: 1}))
	AtomFootUS = derivedAtom("[ft_i]", "foot (international)", ClassificationUSCustomary, PropertyLength, false,
		ValueTermsDefinition(12, Term{Kind: TermUnit, Atom: AtomInchUS, Exponent: 1}))
	AtomYardUS = derivedAtom("[yd_i]", "yard (international)", ClassificationUSCustomary, PropertyLength, false,
		ValueTermsDefinition(3, Term{Kind: TermUnit, Atom: AtomFootUS, Exponent: 1}))
	AtomMileUS = derivedAtom("[mi_i]", "mile (international)", ClassificationUSCustomary, PropertyLength, false,
		ValueTermsDefinition(5280, Term{Kind: TermUnit, Atom: AtomFootUS, Exponent: 1}))
	AtomPoundAV = derivedAtom("[lb_av]", "pound (avoirdupois)", ClassificationUSCustomary, PropertyMass, false,
		ValueTermsDefinition(0.45359237, Term{Kind: TermUnit, Prefix: PrefixKilo, Atom: AtomGram, Exponent: 1}))
	AtomOunceAV = derivedAtom("[oz_av]", "ounce (avoirdupois)", ClassificationUSCustomary, PropertyMass, false,
		ValueTermsDefinition(1.0/16.0, Term{Kind: TermUnit, Atom: AtomPoundAV, Exponent: 1}))
	AtomGallonUS = derivedAtom("[gal_us]", "gallon (US)", ClassificationUSCustomary, PropertyVolume, false,
		ValueTermsDefinition(231, Term{Kind: TermUnit, Atom: AtomInchUS, Exponent: 3}))
	AtomQuartUS = derivedAtom("[qt_us]", "quart (US)", ClassificationUSCustomary, PropertyVolume, false,
		ValueTermsDefinition(0.25, Term{Kind: TermUnit, Atom: AtomGallonUS, Exponent: 1}))
	AtomPintUS = derivedAtom("[pt_us]", "pint (US)", ClassificationUSCustomary, PropertyVolume, false,
		ValueTermsDefinition(0.5, Term{Kind: TermUnit, Atom: AtomQuartUS, Exponent: 1}))
	AtomFluidOunceUS = derivedAtom("[foz_us]", "fluid ounce (US)", ClassificationUSCustomary, PropertyVolume, false,
		ValueTermsDefinition(1.0/128.0, Term{Kind: TermUnit, Atom: AtomGallonUS, Exponent: 1}))
	AtomPoundForceAV = derivedAtom("[lbf_av]", "pound-force (avoirdupois)", ClassificationUSCustomary, PropertyForce, false,
		ValueTermsDefinition(9.80665,
			Term{Kind: TermUnit, Atom: AtomPoundAV, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomMeter, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomSecond, Exponent: -2}))
	AtomPSI = derivedAtom("[psi]", "pound per square inch", ClassificationUSCustomary, PropertyPressure, false,
		ValueTermsDefinition(1,
			Term{Kind: TermUnit, Atom: AtomPoundForceAV, Exponent: 1},
			Term{Kind: TermUnit, Atom: AtomInchUS, Exponent: -2}))
)

// British Imperial units.
var (
	AtomGallonBR = derivedAtom("[gal_br]", "gallon (British)", ClassificationBritishCustomary, PropertyVolume, false,
		ValueTermsDefinition(4.54609, Term{Kind: TermUnit, Atom: AtomLiter, Exponent: 1}))
	AtomPintBR = derivedAtom("[pt_br]", "pint (British)", ClassificationBritishCustomary, PropertyVolume, false,
		ValueTermsDefinition(1.0/8.0, Term{Kind: TermUnit, Atom: AtomGallonBR, Exponent: 1}))
)

// Pressure units outside the SI/customary families above.
var (
	AtomMillimeterHg = derivedAtom("mm[Hg]", "millimeter of mercury", ClassificationClinical, PropertyPressure, false,
		ValueTermsDefinition(133.322, Term{Kind: TermUnit, Atom: AtomPascal, Exponent: 1}))
	AtomAtmosphere = derivedAtom("atm", "standard atmosphere", ClassificationMisc, PropertyPressure, false,
		ValueTermsDefinition(101325, Term{Kind: TermUnit, Atom: AtomPascal, Exponent: 1}))
	AtomBar = derivedAtom("bar", "bar", ClassificationMisc, PropertyPressure, true,
		ValueTermsDefinition(100000, Term{Kind: TermUnit, Atom: AtomPascal, Exponent: 1}))
)

// Heat / temperature special units. Rankine is a plain linear rescaling
// of kelvin (proportional, no offset) so it needs no SpecialConversion;
// Celsius, Fahrenheit, and Reaumur all carry an additive offset and so
// are modeled with ValueTermsSpecialDefinition, inheriting their
// Composition from kelvin via Terms while using Special for the actual
// value conversion.
var (
	AtomRankine = derivedAtom("[degR]", "degree Rankine", ClassificationHeat, PropertyTemperature, false,
		ValueTermsDefinition(5.0/9.0, Term{Kind: TermUnit, Atom: AtomKelvin, Exponent: 1}))
	AtomCelsius = derivedAtom("Cel", "degree Celsius", ClassificationHeat, PropertyTemperature, false,
		ValueTermsSpecialDefinition(1, SpecialCelsius, Term{Kind: TermUnit, Atom: AtomKelvin, Exponent: 1}))
	AtomFahrenheit = derivedAtom("[degF]", "degree Fahrenheit", ClassificationHeat, PropertyTemperature, false,
		ValueTermsSpecialDefinition(1, SpecialFahrenheit, Term{Kind: TermUnit, Atom: AtomKelvin, Exponent: 1}))
	AtomReaumur = derivedAtom("[degRe]", "degree Reaumur", ClassificationHeat, PropertyTemperature, false,
		ValueTermsSpecialDefinition(1, SpecialConversion{
			Name:     "Reaumur",
			ToBase:   func(v float64) float64 { return v*(5.0/4.0) + 273.15 },
			FromBase: func(v float64) float64 { return (v - 273.15) * (4.0 / 5.0) },
		}, Term{Kind: TermUnit, Atom: AtomKelvin, Exponent: 1}))
)

// Dimensionless logarithmic-ratio and level units (spec §9's named
// special-conversion roster).
var (
	AtomNeper = derivedAtom("Np", "neper", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialNeper))
	AtomBel = derivedAtom("B", "bel", ClassificationLevel, PropertyLogarithmicRatio, true,
		ValueSpecialDefinition(1, SpecialBel))
	AtomBelVolt = derivedAtom("B[V]", "bel volt", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialBelVolt))
	AtomBelMillivolt = derivedAtom("B[mV]", "bel millivolt", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialBelMillivolt))
	AtomBelMicrovolt = derivedAtom("B[uV]", "bel microvolt", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialBelMicrovolt))
	AtomBel10Nanovolt = derivedAtom("B[10*nV]", "bel 10 nanovolt", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialBel10Nanovolt))
	AtomBelWatt = derivedAtom("B[W]", "bel watt", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialBelWatt))
	AtomBelKilowatt = derivedAtom("B[kW]", "bel kilowatt", ClassificationLevel, PropertyLogarithmicRatio, false,
		ValueSpecialDefinition(1, SpecialBelKilowatt))
)

// Chemistry / clinical.
var (
	AtomPH = derivedAtom("[pH]", "pH", ClassificationChemical, PropertyAcidity, false,
		ValueSpecialDefinition(1, SpecialPH))
	AtomEquivalent = derivedAtom("eq", "equivalent", ClassificationChemical, PropertyAmountOfSubstance, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Atom: AtomMole, Exponent: 1}))
	AtomOsmole = derivedAtom("osm", "osmole", ClassificationChemical, PropertyAmountOfSubstance, true,
		ValueTermsDefinition(1, Term{Kind: TermUnit, Atom: AtomMole, Exponent: 1}))
	AtomPrismDiopter = derivedAtom("[p'diop]", "prism diopter", ClassificationClinical, PropertyRefraction, false,
		ValueSpecialDefinition(1, SpecialPrismDiopter))
	AtomPercentSlope = derivedAtom("%[slope]", "percent of slope", ClassificationClinical, PropertySlope, false,
		ValueSpecialDefinition(1, SpecialPercentSlope))
)

// Homeopathic potency scales.
var (
	AtomHomeopathicX = derivedAtom("[hp'_X]", "homeopathic potency of decimal series", ClassificationClinical, PropertyDrugPotency, false,
		ValueSpecialDefinition(1, SpecialHomeopathicX))
	AtomHomeopathicC = derivedAtom("[hp'_C]", "homeopathic potency of centesimal series", ClassificationClinical, PropertyDrugPotency, false,
		ValueSpecialDefinition(1, SpecialHomeopathicC))
	AtomHomeopathicM = derivedAtom("[hp'_M]", "homeopathic potency of millesimal series", ClassificationClinical, PropertyDrugPotency, false,
		ValueSpecialDefinition(1, SpecialHomeopathicM))
	AtomHomeopathicQ = derivedAtom("[hp'_Q]", "homeopathic potency of quintamillesimal series", ClassificationClinical, PropertyDrugPotency, false,
		ValueSpecialDefinition(1, SpecialHomeopathicQ))
)

// Arbitrary / incommensurable units.
var (
	AtomInternationalUnit = arbitraryAtom("[IU]", "international unit", ClassificationClinical)
	AtomArbitraryUnit     = arbitraryAtom("[arb'U]", "arbitrary unit", ClassificationClinical)
)

// Information.
var (
	AtomBitLogDualis = derivedAtom("bit_s", "bit (logarithmus dualis)", ClassificationInformation, PropertyInformation, false,
		ValueSpecialDefinition(1, SpecialBitLogarithmusDualis))
	AtomBit = derivedAtom("bit", "bit", ClassificationInformation, PropertyInformation, true,
		ValueDefinition(1))
	AtomByte = derivedAtom("By", "byte", ClassificationInformation, PropertyInformation, true,
		ValueTermsDefinition(8, Term{Kind: TermUnit, Atom: AtomBit, Exponent: 1}))
)
