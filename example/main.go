package main

import (
	"fmt"

	"github.com/gurre/ucum"
)

func main() {
	// Heat transfer rate from mass flow, specific heat, and temperature
	// difference: Q = m_dot * c * dT, for 2.5 kg/s of water.
	massFlow, err := ucum.NewMeasurement(2500, "g/s")
	if err != nil {
		panic(err)
	}
	specificHeat, err := ucum.NewMeasurement(4.186, "J/(g.K)")
	if err != nil {
		panic(err)
	}
	tempDiff, err := ucum.NewMeasurement(15, "K")
	if err != nil {
		panic(err)
	}

	rate, err := massFlow.Multiply(specificHeat)
	if err != nil {
		panic(err)
	}
	rate, err = rate.Multiply(tempDiff)
	if err != nil {
		panic(err)
	}

	fmt.Println("Heat exchange rate:", rate)
}
