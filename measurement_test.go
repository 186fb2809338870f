package ucum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementConvertToLinear(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		from   string
		to     string
		want   float64
		wantOk bool
	}{
		{"km to m", 2, "km", "m", 2000, true},
		{"kg to g", 1, "kg", "g", 1000, true},
		{"km/h to m/s", 36, "km/h", "m/s", 10, true},
		{"N to base units", 5, "N", "kg.m/s2", 5, true},
		{"incompatible units", 1, "m", "s", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMeasurement(tt.value, tt.from)
			require.NoError(t, err)

			converted, err := m.ConvertToExpr(tt.to)
			if !tt.wantOk {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, converted.Value, 1e-9)
		})
	}
}

func TestMeasurementConvertToSpecial(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  float64
	}{
		{"Celsius to Fahrenheit", 0, "Cel", "[degF]", 32},
		{"Fahrenheit to Celsius", 65, "[degF]", "Cel", 18.333333333333332},
		{"Celsius to Kelvin", 0, "Cel", "K", 273.15},
		{"Fahrenheit to Kelvin", 32, "[degF]", "K", 273.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMeasurement(tt.value, tt.from)
			require.NoError(t, err)

			converted, err := m.ConvertToExpr(tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, converted.Value, 1e-9)
		})
	}
}

func TestMeasurementArithmetic(t *testing.T) {
	a, err := NewMeasurement(2, "m")
	require.NoError(t, err)
	b, err := NewMeasurement(50, "cm")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.5, sum.Value, 1e-9)

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.5, diff.Value, 1e-9)
}

func TestMeasurementAddIncompatible(t *testing.T) {
	a, err := NewMeasurement(2, "m")
	require.NoError(t, err)
	b, err := NewMeasurement(3, "s")
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.Error(t, err)
}

func TestMeasurementMagnitude(t *testing.T) {
	m, err := NewMeasurement(2, "km")
	require.NoError(t, err)

	mag, err := m.Magnitude()
	require.NoError(t, err)
	assert.InEpsilon(t, 2000, mag, 1e-9)

	cel, err := NewMeasurement(0, "Cel")
	require.NoError(t, err)
	celMag, err := cel.Magnitude()
	require.NoError(t, err)
	assert.InDelta(t, -273.15, celMag, 1e-9)
}

func TestMeasurementScalarOps(t *testing.T) {
	m, err := NewMeasurement(5, "m")
	require.NoError(t, err)

	doubled := m.MulScalar(2)
	assert.Equal(t, 10.0, doubled.Value)
	assert.Equal(t, "m", doubled.Unit.String())

	halved := m.DivScalar(2)
	assert.Equal(t, 2.5, halved.Value)
	assert.Equal(t, "m", halved.Unit.String())
}

func TestMeasurementMultiplyDivide(t *testing.T) {
	mass, err := NewMeasurement(75, "kg")
	require.NoError(t, err)
	accel, err := NewMeasurement(9.8, "m/s2")
	require.NoError(t, err)

	force, err := mass.Multiply(accel)
	require.NoError(t, err)
	assert.InEpsilon(t, 735, force.Value, 1e-9)

	back, err := force.Divide(accel)
	require.NoError(t, err)
	assert.InEpsilon(t, 75, back.Value, 1e-9)
}

func TestMeasurementMultiplyRejectsSpecial(t *testing.T) {
	temp, err := NewMeasurement(100, "Cel")
	require.NoError(t, err)
	length, err := NewMeasurement(2, "m")
	require.NoError(t, err)

	_, err = temp.Multiply(length)
	assert.Error(t, err)
}

func TestMeasurementEqualAndCompare(t *testing.T) {
	a, err := NewMeasurement(1, "kg")
	require.NoError(t, err)
	b, err := NewMeasurement(1000, "g")
	require.NoError(t, err)
	c, err := NewMeasurement(2, "kg")
	require.NoError(t, err)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.True(t, eq)

	cmp, err := a.Compare(c)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = c.Compare(a)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
}

func TestMeasurementString(t *testing.T) {
	m, err := NewMeasurement(65, "[degF]")
	require.NoError(t, err)
	assert.Equal(t, "65 [degF]", m.String())
}

func TestFahrenheitToCelsiusFixture(t *testing.T) {
	m, err := NewMeasurement(65, "[degF]")
	require.NoError(t, err)
	celsius, err := m.ConvertToExpr("Cel")
	require.NoError(t, err)
	if math.Abs(celsius.Value-18.333333333333332) > 1e-9 {
		t.Errorf("65 [degF] -> Cel = %v, want ~18.333333", celsius.Value)
	}
}
