package mask

import "math"

// sinTable holds round(sin(deg) * 32768) for deg in [0, 359], built once
// at package init so the hot path never calls math.Sin. This is the
// module's own integer sine source rather than a dependency on any host
// trigonometry library (see package docs / design notes).
var sinTable [360]int32

func init() {
	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180.0
		v := math.Sin(rad) * 32768.0
		if v >= 0 {
			sinTable[deg] = int32(v + 0.5)
		} else {
			sinTable[deg] = int32(v - 0.5)
		}
	}
}

// trigoSin returns sin(deg) * 32768 for any integer degree, wrapping into
// [0, 359]. Mirrors lv_trigo_sin's full-circle, any-integer-input
// contract.
func trigoSin(deg int) int32 {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return sinTable[deg]
}
