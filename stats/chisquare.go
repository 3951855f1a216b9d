package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pvlab/engcalc/common"
	"github.com/pvlab/engcalc/model"
)

// BuildHistogram buckets data into bins equal-width bins over
// [min, max]. Interior edges belong to the bin on their right; the
// maximum falls into the last bin.
func BuildHistogram(data []float64, bins int) (*model.Histogram, error) {
	if len(data) == 0 || bins < 1 {
		return nil, common.ErrorInvalidType
	}

	lo, hi := floats.Min(data), floats.Max(data)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	width := (hi - lo) / float64(bins)

	freq := make([]float64, bins)
	for _, v := range data {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		freq[idx]++
	}

	return &model.Histogram{Frequencies: freq, Edges: edges}, nil
}

// ChiSquareTest buckets raw data into DefaultBins bins and runs the
// Pearson chi-squared normality test at significance level alpha
// (BaseAlpha when alpha is out of (0, 1)).
func ChiSquareTest(data []float64, alpha float64) (*model.ChiSquareResult, error) {
	hist, err := BuildHistogram(data, DefaultBins)
	if err != nil {
		return nil, err
	}
	return ChiSquareTestHistogram(hist, alpha)
}

// ChiSquareTestHistogram runs the Pearson chi-squared normality test on
// a pre-built histogram. Bins are assumed uniform. At least 4 bins are
// required so that the degrees of freedom (bins minus the two
// estimated parameters minus one) stay positive.
func ChiSquareTestHistogram(hist *model.Histogram, alpha float64) (*model.ChiSquareResult, error) {
	if !hist.Valid() {
		return nil, common.ErrorInvalidValue
	}
	if hist.Bins() < 4 {
		return nil, common.ErrorInvalidValue
	}
	if alpha <= 0 || alpha >= 1 {
		alpha = BaseAlpha
	}

	freq := hist.Frequencies
	total := floats.Sum(freq)
	if total == 0 {
		return nil, common.ErrorInvalidValue
	}

	midpoints, err := IntervalMidpoints(hist.Edges)
	if err != nil {
		return nil, err
	}
	h := midpoints[1] - midpoints[0]

	mean := stat.Mean(midpoints, freq)

	squares := make([]float64, len(midpoints))
	for i, m := range midpoints {
		squares[i] = m * m
	}
	variance := stat.Mean(squares, freq) - mean*mean
	if variance <= 0 {
		return nil, common.ErrorInvalidValue
	}
	std := math.Sqrt(variance)

	expected := make([]float64, len(midpoints))
	for i, m := range midpoints {
		expected[i] = total * h / std * Phi((m-mean)/std)
	}

	var chi2 float64
	for i := range freq {
		diff := freq[i] - expected[i]
		chi2 += diff * diff / expected[i]
	}

	dof := len(midpoints) - 3
	critical := distuv.ChiSquared{K: float64(dof)}.Quantile(1 - alpha)

	held := chi2 < critical
	return &model.ChiSquareResult{
		Frequencies:       freq,
		Edges:             hist.Edges,
		Expected:          expected,
		Critical:          critical,
		Statistic:         chi2,
		Mean:              mean,
		StdDev:            std,
		DOF:               dof,
		Alpha:             alpha,
		NormalityHeld:     held,
		NormalityRejected: !held,
	}, nil
}
