package ucum

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func assertScalarAlmostEqual(t *testing.T, got Unit, wantScalar float64, wantComp Composition, name string) {
	t.Helper()

	comp, err := got.Composition()
	if err != nil {
		t.Fatalf("%s Composition() error: %v", name, err)
	}
	if comp != wantComp {
		t.Errorf("%s composition = %v, want %v", name, comp, wantComp)
	}

	scalar, err := got.Scalar()
	if err != nil {
		t.Fatalf("%s Scalar() error: %v", name, err)
	}
	const epsilon = 1e-9
	if math.Abs(scalar-wantScalar) > epsilon*math.Max(1, math.Abs(wantScalar)) {
		t.Errorf("%s scalar = %v, want %v (± %v)", name, scalar, wantScalar, epsilon)
	}
}

func TestLex(t *testing.T) {
	tests := []struct {
		input string
		want  []TokenKind
	}{
		{"m", []TokenKind{TokenAtomRun, TokenEOF}},
		{"m/s", []TokenKind{TokenAtomRun, TokenSlash, TokenAtomRun, TokenEOF}},
		{"kg.m/s2", []TokenKind{TokenAtomRun, TokenDot, TokenAtomRun, TokenSlash, TokenAtomRun, TokenEOF}},
		{"(kg.m)/(s2)", []TokenKind{
			TokenLParen, TokenAtomRun, TokenDot, TokenAtomRun, TokenRParen,
			TokenSlash, TokenLParen, TokenAtomRun, TokenRParen, TokenEOF,
		}},
		{"m{RBC}", []TokenKind{TokenAtomRun, TokenLBrace, TokenRBrace, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := lex(tt.input)
			if err != nil {
				t.Fatalf("lex(%q) error: %v", tt.input, err)
			}
			if len(tokens) != len(tt.want) {
				t.Fatalf("lex(%q) got %d tokens, want %d", tt.input, len(tokens), len(tt.want))
			}
			for i, tok := range tokens {
				if tok.Kind != tt.want[i] {
					t.Errorf("lex(%q) token[%d] = %v, want %v", tt.input, i, tok.Kind, tt.want[i])
				}
			}
		})
	}
}

func TestParseUnitAST(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"m", true},
		{"kg", true},
		{"s", true},
		{"m/s", true},
		{"kg.m/s2", true},
		{"(kg.m)/(s2)", true},
		{"(kg2.m2)/s2", true},
		{"W/(m2.K4)", true},
		{"km/h", true},
		{"g/(cm2.s)", true},
		{"(N.s)/m", true},
		{"", true},  // unity
		{"1", true}, // unity factor
		{"m/", false},
		{"(kg", false},
		{"kg)", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ast, err := ParseUnitAST(tt.input)
			if tt.valid {
				if err != nil {
					t.Errorf("ParseUnitAST(%q) error: %v", tt.input, err)
				} else if ast == nil {
					t.Errorf("ParseUnitAST(%q) returned nil AST without error", tt.input)
				}
			} else if err == nil {
				t.Errorf("ParseUnitAST(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestEvalSimpleUnits(t *testing.T) {
	ctx := NewStandardContext()

	tests := []struct {
		input      string
		wantScalar float64
		wantComp   Composition
	}{
		{"m", 1, Composition{AxisLength: 1}},
		{"g", 1, Composition{AxisMass: 1}},
		{"s", 1, Composition{AxisTime: 1}},
		{"km", 1000, Composition{AxisLength: 1}},
		{"kg", 1000, Composition{AxisMass: 1}},
		{"ms", 0.001, Composition{AxisTime: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplexUnit(tt.input, ctx)
			if err != nil {
				t.Fatalf("ParseComplexUnit(%q) error: %v", tt.input, err)
			}
			assertScalarAlmostEqual(t, got, tt.wantScalar, tt.wantComp, fmt.Sprintf("ParseComplexUnit(%q)", tt.input))
		})
	}
}

func TestEvalCompoundUnits(t *testing.T) {
	ctx := NewStandardContext()

	tests := []struct {
		input      string
		wantScalar float64
		wantComp   Composition
	}{
		{"m/s", 1, Composition{AxisLength: 1, AxisTime: -1}},
		{"km/h", 1000.0 / 3600.0, Composition{AxisLength: 1, AxisTime: -1}},
		{"kg.m/s2", 1000, Composition{AxisLength: 1, AxisMass: 1, AxisTime: -2}},
		{"N", 1000, Composition{AxisLength: 1, AxisMass: 1, AxisTime: -2}},
		{"J", 1000, Composition{AxisLength: 2, AxisMass: 1, AxisTime: -2}},
		{"W", 1000, Composition{AxisLength: 2, AxisMass: 1, AxisTime: -3}},
		{"Pa", 1000, Composition{AxisLength: -1, AxisMass: 1, AxisTime: -2}},
		{"(kg.m)/(s2)", 1000, Composition{AxisLength: 1, AxisMass: 1, AxisTime: -2}},
		{"(kg2.m2)/s2", 1000000, Composition{AxisLength: 2, AxisMass: 2, AxisTime: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplexUnit(tt.input, ctx)
			if err != nil {
				t.Fatalf("ParseComplexUnit(%q) error: %v", tt.input, err)
			}
			assertScalarAlmostEqual(t, got, tt.wantScalar, tt.wantComp, fmt.Sprintf("ParseComplexUnit(%q)", tt.input))
		})
	}
}

func TestParseComplexUnit(t *testing.T) {
	ctx := NewStandardContext()

	tests := []struct {
		input      string
		wantScalar float64
		wantComp   Composition
	}{
		{"m", 1, Composition{AxisLength: 1}},
		{"kg.m/s2", 1000, Composition{AxisLength: 1, AxisMass: 1, AxisTime: -2}},
		{"km/h", 1000.0 / 3600.0, Composition{AxisLength: 1, AxisTime: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplexUnit(tt.input, ctx)
			if err != nil {
				t.Fatalf("ParseComplexUnit(%q) error: %v", tt.input, err)
			}
			assertScalarAlmostEqual(t, got, tt.wantScalar, tt.wantComp, fmt.Sprintf("ParseComplexUnit(%q)", tt.input))
		})
	}
}

func TestParseInvalidUnits(t *testing.T) {
	ctx := NewStandardContext()

	tests := []string{
		"m/",
		".m",
		"(kg",
		"kg)",
		"xyzzy",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseComplexUnit(input, ctx); err == nil {
				t.Errorf("ParseComplexUnit(%q) expected error, got nil", input)
			}
		})
	}
}

func TestEvalPositiveSignedExponent(t *testing.T) {
	ctx := NewStandardContext()

	tests := []struct {
		input      string
		wantScalar float64
		wantComp   Composition
	}{
		{"m+2", 1, Composition{AxisLength: 2}},
		{"m2", 1, Composition{AxisLength: 2}},
		{"10*+3", 1000, Composition{}},
		{"10*-3", 0.001, Composition{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplexUnit(tt.input, ctx)
			if err != nil {
				t.Fatalf("ParseComplexUnit(%q) error: %v", tt.input, err)
			}
			assertScalarAlmostEqual(t, got, tt.wantScalar, tt.wantComp, fmt.Sprintf("ParseComplexUnit(%q)", tt.input))
		})
	}
}

func TestUnknownUnitStringEmbedsAtomSymbol(t *testing.T) {
	_, err := Parse("xyzzy")
	if err == nil {
		t.Fatal("Parse(xyzzy) expected error, got nil")
	}

	var unknown *UnknownUnitString
	if !errors.As(err, &unknown) {
		t.Fatalf("Parse(xyzzy) error = %v, want *UnknownUnitString", err)
	}

	var atomErr *UnknownAtomSymbol
	if !errors.As(unknown, &atomErr) {
		t.Fatalf("UnknownUnitString.Err = %v, want *UnknownAtomSymbol", unknown.Err)
	}
	if atomErr.Symbol != "xyzzy" {
		t.Errorf("UnknownAtomSymbol.Symbol = %q, want %q", atomErr.Symbol, "xyzzy")
	}
}

func TestParseCaseInsensitive(t *testing.T) {
	got, err := ParseCaseInsensitive("KG.M/S2")
	if err != nil {
		t.Fatalf("ParseCaseInsensitive error: %v", err)
	}
	assertScalarAlmostEqual(t, got, 1000, Composition{AxisLength: 1, AxisMass: 1, AxisTime: -2}, "ParseCaseInsensitive")
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse did not panic on an invalid expression")
		}
	}()
	MustParse("xyzzy")
}
