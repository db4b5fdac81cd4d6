package interp

import (
	"fmt"
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

// PrecisionStats is a struct storing statistics about the precision of a
// vector of computed values with respect to a vector of reference values.
// The precision of one entry is -log2(|want - have|), i.e. the number of
// correct bits after the binary point.
type PrecisionStats struct {
	MINLog2Prec float64
	MAXLog2Prec float64
	AVGLog2Prec float64
	MEDLog2Prec float64
	STDLog2Prec float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────┐
│    Log2 │ PREC  │
├─────────┼───────┤
│MIN Prec │ %5.2f │
│MAX Prec │ %5.2f │
│AVG Prec │ %5.2f │
│MED Prec │ %5.2f │
│STD Prec │ %5.2f │
└─────────┴───────┘
`,
		prec.MINLog2Prec,
		prec.MAXLog2Prec,
		prec.AVGLog2Prec,
		prec.MEDLog2Prec,
		prec.STDLog2Prec)
}

// GetPrecisionStats generates a [PrecisionStats] struct from the reference
// values want and the computed values have. Both slices must have the same
// length. An exact match is clamped to the precision of the smallest
// subnormal.
func GetPrecisionStats(want, have []float64) (prec PrecisionStats) {

	if len(want) != len(have) {
		panic("cannot GetPrecisionStats: want and have of different lengths")
	}

	log2Prec := make([]float64, len(want))
	for i := range want {
		err := math.Abs(want[i] - have[i])
		if err == 0 {
			err = math.SmallestNonzeroFloat64
		}
		log2Prec[i] = -math.Log2(err)
	}

	prec.MINLog2Prec, _ = stats.Min(log2Prec)
	prec.MAXLog2Prec, _ = stats.Max(log2Prec)
	prec.AVGLog2Prec, _ = stats.Mean(log2Prec)
	prec.MEDLog2Prec, _ = stats.Median(log2Prec)
	prec.STDLog2Prec, _ = stats.StandardDeviation(log2Prec)

	return
}

// VerifyTestVectors asserts that every entry of have matches the reference
// want with at least log2MinPrec bits of precision.
func VerifyTestVectors(want, have []float64, log2MinPrec float64, printPrecisionStats bool, t *testing.T) {

	precStats := GetPrecisionStats(want, have)

	if printPrecisionStats {
		t.Log(precStats.String())
	}

	require.GreaterOrEqual(t, precStats.MINLog2Prec, log2MinPrec)
}
