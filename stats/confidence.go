package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pvlab/engcalc/common"
	"github.com/pvlab/engcalc/model"
)

// ConfMethod selects the half-width formula of ConfidenceLevel.
type ConfMethod int

const (
	// ConfMethodStd uses half-width t * std / sqrt(n).
	ConfMethodStd ConfMethod = iota
	// ConfMethodVar uses half-width t * var / sqrt(n).
	ConfMethodVar
)

// ConfidenceLevel computes the Student-t confidence interval of the
// sample mean at significance level alpha (BaseAlpha when alpha is out
// of (0, 1)). Variance and standard deviation are the population
// forms.
func ConfidenceLevel(data []float64, method ConfMethod, alpha float64) (*model.ConfidenceInterval, error) {
	if len(data) < 2 {
		return nil, common.ErrorInvalidType
	}
	if alpha <= 0 || alpha >= 1 {
		alpha = BaseAlpha
	}

	mean := stat.Mean(data, nil)
	variance := stat.PopVariance(data, nil)
	std := math.Sqrt(variance)
	n := len(data)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	tStat := tDist.Quantile(1 - alpha/2)

	var halfWidth float64
	switch method {
	case ConfMethodStd:
		halfWidth = tStat * std / math.Sqrt(float64(n))
	case ConfMethodVar:
		halfWidth = tStat * variance / math.Sqrt(float64(n))
	default:
		return nil, common.ErrorUnknownMode
	}

	return &model.ConfidenceInterval{
		Lower:     mean - halfWidth,
		Upper:     mean + halfWidth,
		HalfWidth: halfWidth,
		Mean:      mean,
		Variance:  variance,
		StdDev:    std,
		TStat:     tStat,
		N:         n,
		Alpha:     alpha,
	}, nil
}

// ConfidenceMask reports, for each point, whether it lies inside the
// confidence interval computed on the sample with that point excluded.
// Recomputing a fresh interval per point is O(n^2); samples here are
// small calibration sets.
func ConfidenceMask(data []float64, alpha float64) ([]bool, error) {
	if len(data) < 3 {
		return nil, common.ErrorInvalidType
	}

	mask := make([]bool, len(data))
	rest := make([]float64, 0, len(data)-1)
	for i, v := range data {
		rest = rest[:0]
		rest = append(rest, data[:i]...)
		rest = append(rest, data[i+1:]...)

		interval, err := ConfidenceLevel(rest, ConfMethodStd, alpha)
		if err != nil {
			return nil, err
		}
		mask[i] = interval.Contains(v)
	}
	return mask, nil
}
