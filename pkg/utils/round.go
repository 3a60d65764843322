package utils

import "math"

func RoundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

func RoundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
