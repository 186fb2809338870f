package ucum

import "testing"

func TestClassificationRoundTrip(t *testing.T) {
	for c := ClassificationSI; c <= ClassificationMisc; c++ {
		got, ok := ParseClassification(c.String())
		if !ok || got != c {
			t.Errorf("ParseClassification(%q) = %v, %v; want %v, true", c.String(), got, ok, c)
		}
	}
}

func TestParseClassificationUnknown(t *testing.T) {
	if _, ok := ParseClassification("not-a-real-classification"); ok {
		t.Error("ParseClassification should reject unknown strings")
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	for p := PropertyLength; p <= PropertySlope; p++ {
		got, ok := ParseProperty(p.String())
		if !ok || got != p {
			t.Errorf("ParseProperty(%q) = %v, %v; want %v, true", p.String(), got, ok, p)
		}
	}
}

func TestAtomClassificationAndProperty(t *testing.T) {
	if AtomMeter.Classification != ClassificationSI {
		t.Errorf("meter classification = %v, want SI", AtomMeter.Classification)
	}
	if AtomMeter.Property != PropertyLength {
		t.Errorf("meter property = %v, want Length", AtomMeter.Property)
	}
	if !AtomMeter.Metric {
		t.Error("meter should be metric")
	}
	if AtomMeter.Arbitrary {
		t.Error("meter should not be arbitrary")
	}
}
