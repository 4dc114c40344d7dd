package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value of a confidence level given in
// percent, 0 to 100.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	return dist.Quantile((1 + confidence/100) / 2)
}

// ScoreInterval is the Wilson score interval of a win rate: wins out of n
// games at the given confidence in percent. Draws count as half a win.
func ScoreInterval(wins float64, n int, confidence float64) (float64, float64) {
	if n == 0 {
		return 0, 1
	}
	z := ZVal(confidence)
	nf := float64(n)
	p := wins / nf
	denom := 1 + z*z/nf
	center := (p + z*z/(2*nf)) / denom
	half := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom
	return math.Max(0, center-half), math.Min(1, center+half)
}
