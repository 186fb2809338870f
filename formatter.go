package ucum

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Formatter renders a Unit to its UCUM expression form. Kept as an
// interface — matching the teacher's Formatter/DefaultFormatter split —
// so alternate renderings (reduced form, below) can share the same
// per-term formatting helpers without the caller needing to know which
// is in use.
type Formatter interface {
	Format(u Unit, opts FormatOptions) (string, error)
}

// FormatOptions controls rendering. Reduced selects expression_reduced()
// semantics (spec §4.C): terms are grouped by (prefix, atom, annotation)
// and their exponents summed, discarding the original nesting/order.
type FormatOptions struct {
	Reduced bool
}

// DefaultFormatter implements Formatter, generalizing the teacher's
// AST-walking DefaultFormatter to walk a flat []Term instead of a Node
// tree (Unit no longer carries its parse tree once evaluated).
type DefaultFormatter struct{}

func (f DefaultFormatter) Format(u Unit, opts FormatOptions) (string, error) {
	terms := []Term(u)
	if opts.Reduced {
		return formatReduced(reduceTerms(terms))
	}

	if len(terms) == 0 {
		return "1", nil
	}

	// Once a '/' is written, the parser inverts everything to its right,
	// so every later term is written with its exponent negated.
	var b strings.Builder
	inverted := false
	for i, t := range terms {
		piece, err := formatTerm(t)
		if err != nil {
			return "", err
		}
		if i == 0 {
			b.WriteString(piece)
			continue
		}
		if inverted {
			b.WriteString(".")
			b.WriteString(formatTermMagnitude(t, -t.Exponent))
		} else if t.Exponent < 0 && t.Kind != TermAnnotationOnly {
			inverted = true
			b.WriteString("/")
			b.WriteString(formatTermMagnitude(t, -t.Exponent))
		} else {
			b.WriteString(".")
			b.WriteString(piece)
		}
	}
	return b.String(), nil
}

// formatReduced implements expression_reduced()'s mode 2 rendering (spec
// §4.C): numerators (positive exponents) are sorted before denominators,
// numerators are joined with '.', then a single '/' introduces the
// denominators, themselves joined with '.'. A missing numerator renders as
// the leading unity "1" rather than being dropped.
func formatReduced(terms []Term) (string, error) {
	if len(terms) == 0 {
		return "1", nil
	}

	var numerators, denominators []Term
	for _, t := range terms {
		if t.Kind != TermAnnotationOnly && t.Exponent < 0 {
			denominators = append(denominators, t)
		} else {
			numerators = append(numerators, t)
		}
	}

	var b strings.Builder
	if len(numerators) == 0 {
		b.WriteString("1")
	}
	for i, t := range numerators {
		if i > 0 {
			b.WriteString(".")
		}
		piece, err := formatTerm(t)
		if err != nil {
			return "", err
		}
		b.WriteString(piece)
	}

	for i, t := range denominators {
		if i == 0 {
			b.WriteString("/")
		} else {
			b.WriteString(".")
		}
		b.WriteString(formatTermMagnitude(t, -t.Exponent))
	}
	return b.String(), nil
}

// formatTerm renders one term with its own (possibly negative) exponent.
func formatTerm(t Term) (string, error) {
	return formatTermMagnitude(t, t.Exponent), nil
}

// formatTermMagnitude renders t using exponent in place of t.Exponent —
// used so a negative-exponent term following a '/' can be printed with
// its sign flipped without a second copy of the term.
func formatTermMagnitude(t Term, exponent int) string {
	var core string
	switch t.Kind {
	case TermFactor:
		core = fmt.Sprintf("%g", t.Factor)
	case TermAnnotationOnly:
		return "{" + t.Annotation + "}"
	case TermUnit:
		core = t.Prefix.Symbol() + t.Atom.Symbol
	}

	if exponent != 1 {
		core = fmt.Sprintf("%s%d", core, exponent)
	}
	if t.Annotation != "" {
		core += "{" + t.Annotation + "}"
	}
	return core
}

// reduceTerms implements expression_reduced(): group by identity
// (prefix, atom, annotation) and sum exponents, then drop any term whose
// summed exponent is zero. Order is the order each distinct identity was
// first seen, for stable output.
func reduceTerms(terms []Term) []Term {
	type key struct {
		prefix     Prefix
		atom       *Atom
		annotation string
		kind       TermKind
		factor     float64
	}

	order := make([]key, 0, len(terms))
	sums := make(map[key]int)

	for _, t := range terms {
		k := key{prefix: t.Prefix, atom: t.Atom, annotation: t.Annotation, kind: t.Kind, factor: t.Factor}
		if _, ok := sums[k]; !ok {
			order = append(order, k)
		}
		sums[k] += t.Exponent
	}

	out := make([]Term, 0, len(order))
	for _, k := range order {
		exp := sums[k]
		if exp == 0 {
			continue
		}
		out = append(out, Term{
			Kind:       k.kind,
			Prefix:     k.prefix,
			Atom:       k.atom,
			Exponent:   exp,
			Factor:     k.factor,
			Annotation: k.annotation,
		})
	}
	return out
}

// HumanizeScalar picks a metric prefix that keeps a scalar's mantissa
// near 1 and returns (prefix symbol, scaled value). Adapted from the
// teacher's formatter_prefix.go computePrefix, generalized from a fixed
// G/M/k/m/u/n/p ladder to any decimal Prefix in allPrefixes (the binary
// Ki..Ei prefixes are never chosen). It never changes
// what Format/expression() produce — it is purely an opt-in display
// helper for callers building their own human-facing output.
func HumanizeScalar(value float64) (string, float64) {
	abs := math.Abs(value)
	if abs == 0 {
		return "", 0
	}

	candidates := append([]Prefix{PrefixNone}, allPrefixes...)
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Factor() < candidates[j].Factor()
	})

	best := PrefixNone
	for _, p := range candidates {
		if p.Factor() <= 0 || p >= PrefixKibi {
			continue
		}
		if abs/p.Factor() >= 1 {
			best = p
		}
	}
	return best.Symbol(), value / best.Factor()
}
