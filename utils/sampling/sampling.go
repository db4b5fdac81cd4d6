package sampling

import (
	"encoding/binary"
)

// RandFloat64 returns a uniform float64 in [min, max) read from prng.
func RandFloat64(prng PRNG, min, max float64) float64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		panic(err)
	}
	f := float64(binary.BigEndian.Uint64(b)) / 1.8446744073709552e+19
	return min + f*(max-min)
}
