package experiments

import "gonum.org/v1/gonum/stat/distuv"

// zValue returns the two-tailed z-value for a confidence interval given
// as a percentage from 0 to 100.
func zValue(confidence float64) float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: 1,
	}
	area := (1 + confidence/100) / 2
	return dist.Quantile(area)
}
