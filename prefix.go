package ucum

// Prefix is the closed set of UCUM decimal and binary multipliers. Unlike
// the teacher's version, Factor returns a plain float64: spec rules out
// arbitrary-precision arithmetic entirely, so there is nothing for
// math/big to buy here.
type Prefix int

const (
	// PrefixNone means no prefix was present — the multiplier is 1.
	PrefixNone Prefix = iota
	PrefixYotta
	PrefixZetta
	PrefixExa
	PrefixPeta
	PrefixTera
	PrefixGiga
	PrefixMega
	PrefixKilo
	PrefixHecto
	PrefixDeca
	PrefixDeci
	PrefixCenti
	PrefixMilli
	PrefixMicro
	PrefixNano
	PrefixPico
	PrefixFemto
	PrefixAtto
	PrefixZepto
	PrefixYocto
	PrefixKibi
	PrefixMebi
	PrefixGibi
	PrefixTebi
	PrefixPebi
	PrefixExbi
)

// Symbol returns the UCUM prefix symbol, e.g. "k" for PrefixKilo.
func (p Prefix) Symbol() string {
	switch p {
	case PrefixYotta:
		return "Y"
	case PrefixZetta:
		return "Z"
	case PrefixExa:
		return "E"
	case PrefixPeta:
		return "P"
	case PrefixTera:
		return "T"
	case PrefixGiga:
		return "G"
	case PrefixMega:
		return "M"
	case PrefixKilo:
		return "k"
	case PrefixHecto:
		return "h"
	case PrefixDeca:
		return "da"
	case PrefixDeci:
		return "d"
	case PrefixCenti:
		return "c"
	case PrefixMilli:
		return "m"
	case PrefixMicro:
		return "u"
	case PrefixNano:
		return "n"
	case PrefixPico:
		return "p"
	case PrefixFemto:
		return "f"
	case PrefixAtto:
		return "a"
	case PrefixZepto:
		return "z"
	case PrefixYocto:
		return "y"
	case PrefixKibi:
		return "Ki"
	case PrefixMebi:
		return "Mi"
	case PrefixGibi:
		return "Gi"
	case PrefixTebi:
		return "Ti"
	case PrefixPebi:
		return "Pi"
	case PrefixExbi:
		return "Ei"
	default:
		return ""
	}
}

// Factor returns the prefix's multiplier.
func (p Prefix) Factor() float64 {
	switch p {
	case PrefixYotta:
		return 1e24
	case PrefixZetta:
		return 1e21
	case PrefixExa:
		return 1e18
	case PrefixPeta:
		return 1e15
	case PrefixTera:
		return 1e12
	case PrefixGiga:
		return 1e9
	case PrefixMega:
		return 1e6
	case PrefixKilo:
		return 1e3
	case PrefixHecto:
		return 1e2
	case PrefixDeca:
		return 1e1
	case PrefixDeci:
		return 1e-1
	case PrefixCenti:
		return 1e-2
	case PrefixMilli:
		return 1e-3
	case PrefixMicro:
		return 1e-6
	case PrefixNano:
		return 1e-9
	case PrefixPico:
		return 1e-12
	case PrefixFemto:
		return 1e-15
	case PrefixAtto:
		return 1e-18
	case PrefixZepto:
		return 1e-21
	case PrefixYocto:
		return 1e-24
	case PrefixKibi:
		return 1024
	case PrefixMebi:
		return 1024 * 1024
	case PrefixGibi:
		return 1024 * 1024 * 1024
	case PrefixTebi:
		return 1024 * 1024 * 1024 * 1024
	case PrefixPebi:
		return 1024 * 1024 * 1024 * 1024 * 1024
	case PrefixExbi:
		return 1024 * 1024 * 1024 * 1024 * 1024 * 1024
	case PrefixNone:
		return 1
	default:
		return 1
	}
}

// allPrefixes lists every non-empty prefix symbol, longest first, so
// context.go's resolver can greedily match the longest valid prefix
// before falling back to shorter ones (e.g. "da" before "d").
var allPrefixes = []Prefix{
	PrefixYotta, PrefixZetta, PrefixExa, PrefixPeta, PrefixTera, PrefixGiga,
	PrefixMega, PrefixKilo, PrefixHecto, PrefixDeca, PrefixDeci, PrefixCenti,
	PrefixMilli, PrefixMicro, PrefixNano, PrefixPico, PrefixFemto, PrefixAtto,
	PrefixZepto, PrefixYocto, PrefixKibi, PrefixMebi, PrefixGibi, PrefixTebi,
	PrefixPebi, PrefixExbi,
}

func init() {
	sortPrefixesByLength(allPrefixes)
}

func sortPrefixesByLength(prefixes []Prefix) {
	for i := 1; i < len(prefixes); i++ {
		for j := i; j > 0 && len(prefixes[j-1].Symbol()) < len(prefixes[j].Symbol()); j-- {
			prefixes[j-1], prefixes[j] = prefixes[j], prefixes[j-1]
		}
	}
}
