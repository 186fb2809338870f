package ucum

import "testing"

// BenchmarkParse benchmarks parsing a mix of simple and compound
// expressions, adapted from the teacher's si_benchmark_test.go.
func BenchmarkParse(b *testing.B) {
	expressions := []string{
		"m",
		"km/h",
		"m/s2",
		"kPa",
		"kg/m3",
		"K",
		"W/(m2.K)",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		expr := expressions[i%len(expressions)]
		if _, err := Parse(expr); err != nil {
			b.Fatalf("Parse(%s): %v", expr, err)
		}
	}
}

// BenchmarkParseCached measures repeated parsing of one expression after
// a warm-up parse. Parse itself memoizes nothing (resolveAtom's cache is
// filled by Scalar/Composition, not by parsing).
func BenchmarkParseCached(b *testing.B) {
	if _, err := Parse("kg.m/s2"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse("kg.m/s2"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnitMul(b *testing.B) {
	m := MustParse("m")
	s := MustParse("s")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Mul(s)
	}
}

func BenchmarkUnitDiv(b *testing.B) {
	m := MustParse("m")
	s := MustParse("s")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Div(s)
	}
}

func BenchmarkUnitScalar(b *testing.B) {
	u := MustParse("kg.m/s2")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := u.Scalar(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMeasurementConvertTo(b *testing.B) {
	speed, err := NewMeasurement(100, "km/h")
	if err != nil {
		b.Fatal(err)
	}
	target := MustParse("m/s")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := speed.ConvertTo(target); err != nil {
			b.Fatal(err)
		}
	}
}
