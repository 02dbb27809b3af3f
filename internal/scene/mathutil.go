package scene

import "math"

const piConst = math.Pi

func atan2(y, x float64) float64 { return math.Atan2(y, x) }
func asin(x float64) float64     { return math.Asin(x) }

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
