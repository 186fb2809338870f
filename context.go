package ucum

import "strings"

// StandardContext resolves atom-runs against the package catalog. It
// generalizes the teacher's prefix-stripping StandardContext.Resolve loop
// (context.go) with two additions the SI-only teacher never needed: a
// trailing signed-integer exponent peel, and an optional case-insensitive
// mode for the "ci" symbol table UCUM defines alongside the case-sensitive
// one (spec §4.A/§4.B).
type StandardContext struct {
	caseInsensitive bool
}

// NewStandardContext returns the default, case-sensitive resolution
// context used by Parse.
func NewStandardContext() *StandardContext {
	return &StandardContext{}
}

// NewCaseInsensitiveContext returns a context that resolves the catalog's
// secondary, case-insensitive symbol table, as ParseCaseInsensitive uses.
func NewCaseInsensitiveContext() *StandardContext {
	return &StandardContext{caseInsensitive: true}
}

// Resolve implements Context. raw is one lexed atom-run: an atom or a
// prefix+atom, possibly with a trailing signed exponent. The parser turns
// all-digit runs into FactorNode before they reach here; Resolve itself
// maps only "" and "1" to unity and reports any other bare number as an
// unknown unit. In case-insensitive mode the prefix symbol is matched
// case-insensitively too.
func (ctx *StandardContext) Resolve(raw string) (Unit, error) {
	if raw == "" || raw == "1" {
		return UnitUnity, nil
	}

	core, exponent, err := splitExponent(raw)
	if err != nil {
		return nil, err
	}

	if atom, ok := ctx.lookupAtom(core); ok {
		return Unit{{Kind: TermUnit, Atom: atom, Exponent: exponent}}, nil
	}

	for _, p := range allPrefixes {
		sym := p.Symbol()
		if !strings.HasPrefix(core, sym) &&
			!(ctx.caseInsensitive && len(core) >= len(sym) && strings.EqualFold(core[:len(sym)], sym)) {
			continue
		}
		remainder := core[len(sym):]
		if remainder == "" {
			continue
		}
		if atom, ok := ctx.lookupAtom(remainder); ok && atom.Metric {
			return Unit{{Kind: TermUnit, Prefix: p, Atom: atom, Exponent: exponent}}, nil
		}
	}

	return nil, &UnknownUnitString{Unit: raw, Err: &UnknownAtomSymbol{Symbol: core}}
}

func (ctx *StandardContext) lookupAtom(symbol string) (*Atom, bool) {
	if ctx.caseInsensitive {
		return lookupAtomCI(symbol)
	}
	return lookupAtom(symbol)
}

// splitExponent peels a trailing, optionally '+' or '-' signed, integer off
// raw and returns the remaining core symbol and the exponent (1 if none was
// present), per grammar §4.B's `exponent := ('+' | '-')? digits`. No
// catalog atom ends in a bare digit, so a greedy trailing match is always
// unambiguous — including atoms like "10*" and "10^", whose own symbol ends
// in punctuation rather than a digit.
func splitExponent(raw string) (core string, exponent int, err error) {
	i := len(raw)
	for i > 0 && raw[i-1] >= '0' && raw[i-1] <= '9' {
		i--
	}
	if i > 0 && (raw[i-1] == '-' || raw[i-1] == '+') {
		i--
	}
	if i == len(raw) || i == 0 {
		return raw, 1, nil
	}

	digits := raw[i:]
	if digits == "" || digits == "-" || digits == "+" {
		return raw, 1, nil
	}

	exponent, convErr := parseSignedInt(digits)
	if convErr != nil {
		return raw, 1, nil
	}
	return raw[:i], exponent, nil
}

func parseSignedInt(s string) (int, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, &BadFragment{Fragment: s}
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &BadFragment{Fragment: s}
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
