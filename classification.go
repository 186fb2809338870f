package ucum

// Classification groups catalog atoms by where UCUM draws them from, per
// spec §3's atom attributes. It is a closed set — new classifications are
// a catalog-wide decision, not something a caller can extend.
type Classification int

const (
	ClassificationSI Classification = iota
	ClassificationISO1000
	ClassificationUSCustomary
	ClassificationBritishCustomary
	ClassificationHeat
	ClassificationClinical
	ClassificationChemical
	ClassificationLevel
	ClassificationDimensionless
	ClassificationInformation
	ClassificationMisc
)

func (c Classification) String() string {
	switch c {
	case ClassificationSI:
		return "si"
	case ClassificationISO1000:
		return "iso1000"
	case ClassificationUSCustomary:
		return "us-customary"
	case ClassificationBritishCustomary:
		return "british-customary"
	case ClassificationHeat:
		return "heat"
	case ClassificationClinical:
		return "clinical"
	case ClassificationChemical:
		return "chemical"
	case ClassificationLevel:
		return "level"
	case ClassificationDimensionless:
		return "dimensionless"
	case ClassificationInformation:
		return "information"
	case ClassificationMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// ParseClassification is the inverse of String, used by tests and by
// callers that round-trip catalog metadata through text.
func ParseClassification(s string) (Classification, bool) {
	for c := ClassificationSI; c <= ClassificationMisc; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// Property names the physical quantity (or quasi-quantity, for the
// logarithmic and arbitrary families) an atom measures. Property is
// independent of Composition — Gy and Sv share the Composition of J/kg
// but carry distinct Properties (absorbed dose vs dose equivalent)
// because UCUM keeps them distinct atoms.
type Property int

const (
	PropertyLength Property = iota
	PropertyTime
	PropertyMass
	PropertyPlaneAngle
	PropertySolidAngle
	PropertyTemperature
	PropertyElectricCharge
	PropertyLuminousIntensity
	PropertyFrequency
	PropertyForce
	PropertyPressure
	PropertyEnergy
	PropertyPower
	PropertyElectricCurrent
	PropertyElectricPotential
	PropertyElectricCapacitance
	PropertyElectricResistance
	PropertyElectricConductance
	PropertyMagneticFlux
	PropertyMagneticFluxDensity
	PropertyInductance
	PropertyLuminousFlux
	PropertyIlluminance
	PropertyRadioactivity
	PropertyAbsorbedDose
	PropertyDoseEquivalent
	PropertyCatalyticActivity
	PropertyVolume
	PropertyAmountOfSubstance
	PropertyMassConcentration
	PropertyDimensionless
	PropertyArbitrary
	PropertyInformation
	PropertyLogarithmicRatio
	PropertyAcidity
	PropertyRefraction
	PropertyDrugPotency
	PropertySlope
)

func (p Property) String() string {
	names := map[Property]string{
		PropertyLength:              "length",
		PropertyTime:                "time",
		PropertyMass:                "mass",
		PropertyPlaneAngle:          "plane-angle",
		PropertySolidAngle:          "solid-angle",
		PropertyTemperature:         "temperature",
		PropertyElectricCharge:      "electric-charge",
		PropertyLuminousIntensity:   "luminous-intensity",
		PropertyFrequency:           "frequency",
		PropertyForce:               "force",
		PropertyPressure:            "pressure",
		PropertyEnergy:              "energy",
		PropertyPower:               "power",
		PropertyElectricCurrent:     "electric-current",
		PropertyElectricPotential:   "electric-potential",
		PropertyElectricCapacitance: "electric-capacitance",
		PropertyElectricResistance:  "electric-resistance",
		PropertyElectricConductance: "electric-conductance",
		PropertyMagneticFlux:        "magnetic-flux",
		PropertyMagneticFluxDensity: "magnetic-flux-density",
		PropertyInductance:          "inductance",
		PropertyLuminousFlux:        "luminous-flux",
		PropertyIlluminance:         "illuminance",
		PropertyRadioactivity:       "radioactivity",
		PropertyAbsorbedDose:        "absorbed-dose",
		PropertyDoseEquivalent:      "dose-equivalent",
		PropertyCatalyticActivity:   "catalytic-activity",
		PropertyVolume:              "volume",
		PropertyAmountOfSubstance:   "amount-of-substance",
		PropertyMassConcentration:   "mass-concentration",
		PropertyDimensionless:       "dimensionless",
		PropertyArbitrary:           "arbitrary",
		PropertyInformation:         "information",
		PropertyLogarithmicRatio:    "logarithmic-ratio",
		PropertyAcidity:             "acidity",
		PropertyRefraction:          "refraction",
		PropertyDrugPotency:         "drug-potency",
		PropertySlope:               "slope",
	}
	if n, ok := names[p]; ok {
		return n
	}
	return "unknown"
}

// ParseProperty is the inverse of String.
func ParseProperty(s string) (Property, bool) {
	for p := PropertyLength; p <= PropertySlope; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}
