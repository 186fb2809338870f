package ucum_test

import (
	"fmt"

	"github.com/gurre/ucum"
)

func Example() {
	distance, err := ucum.NewMeasurement(72, "km")
	if err != nil {
		panic(err)
	}
	elapsed, err := ucum.NewMeasurement(2, "h")
	if err != nil {
		panic(err)
	}

	speed, err := distance.Divide(elapsed)
	if err != nil {
		panic(err)
	}
	fmt.Println(speed)

	metersPerSecond, err := speed.ConvertTo(ucum.MustParse("m/s"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f %s\n", metersPerSecond.Value, metersPerSecond.Unit)

	mass, err := ucum.NewMeasurement(75, "kg")
	if err != nil {
		panic(err)
	}
	acceleration, err := ucum.NewMeasurement(9.8, "m/s2")
	if err != nil {
		panic(err)
	}

	force, err := mass.Multiply(acceleration)
	if err != nil {
		panic(err)
	}
	fmt.Println(force)

	// Output:
	// 36 km/h
	// 10 m/s
	// 735 kg.m/s2
}

func ExampleMeasurement_ConvertTo() {
	boiling, err := ucum.NewMeasurement(100, "Cel")
	if err != nil {
		panic(err)
	}
	fahrenheit, err := boiling.ConvertTo(ucum.MustParse("[degF]"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f %s\n", fahrenheit.Value, fahrenheit.Unit)

	// Output:
	// 212 [degF]
}

func ExampleParse() {
	u, err := ucum.Parse("kg.m/s2")
	if err != nil {
		panic(err)
	}
	fmt.Println(u)

	// Output:
	// kg.m/s2
}

func ExampleMeasurement_roundTrip() {
	bodyTemp, err := ucum.NewMeasurement(98.6, "[degF]")
	if err != nil {
		panic(err)
	}
	celsius, err := bodyTemp.ConvertTo(ucum.MustParse("Cel"))
	if err != nil {
		panic(err)
	}
	back, err := celsius.ConvertTo(ucum.MustParse("[degF]"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", back.Value)

	// Output:
	// 98.6
}
