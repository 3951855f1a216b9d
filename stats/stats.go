package stats

import (
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"gonum.org/v1/gonum/stat"

	"github.com/pvlab/engcalc/common"
)

// SigmaMask reports which points lie within one population standard
// deviation of the sample mean. The historical name of this filter is
// "three sigma", but the threshold has always been one sigma; callers
// depend on the tighter cut, so it is kept.
func SigmaMask(data []float64) ([]bool, error) {
	if len(data) == 0 {
		return nil, common.ErrorInvalidType
	}

	mean := stat.Mean(data, nil)
	std := stat.PopStdDev(data, nil)

	mask := make([]bool, len(data))
	for i, v := range data {
		mask[i] = math.Abs(v-mean) <= std
	}
	return mask, nil
}

// SigmaFilter returns the points retained by SigmaMask.
func SigmaFilter(data []float64) ([]float64, error) {
	mask, err := SigmaMask(data)
	if err != nil {
		return nil, err
	}
	return applyMask(data, mask), nil
}

// IntervalMidpoints returns the midpoint of each consecutive pair of
// edges; the result has one element fewer than the input.
func IntervalMidpoints(edges []float64) ([]float64, error) {
	if len(edges) < 2 {
		return nil, common.ErrorInvalidType
	}

	midpoints := make([]float64, len(edges)-1)
	for i := range midpoints {
		midpoints[i] = (edges[i] + edges[i+1]) / 2
	}
	return midpoints, nil
}

// Phi is the standard normal density.
func Phi(u float64) float64 {
	return 0.3989422804014327 * math.Exp(-u*u/2.0)
}

// PhiSlice evaluates Phi elementwise.
func PhiSlice(u []float64) []float64 {
	res := make([]float64, len(u))
	for i, v := range u {
		res[i] = Phi(v)
	}
	return res
}

// MovingAverage returns the trailing moving average of data; the first
// window points are NaN.
func MovingAverage(data []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, common.ErrorInvalidValue
	}

	res := make([]float64, len(data))
	for i := range res {
		if i < window {
			res[i] = math.NaN()
			continue
		}
		res[i] = stat.Mean(data[i-window:i], nil)
	}
	return res, nil
}

// Distance returns the sum of |a[i]^order - b[i]^order| over both
// slices.
func Distance(a, b []float64, order int) (float64, error) {
	if len(a) != len(b) {
		return 0, common.ErrorInvalidType
	}
	if order < 1 {
		return 0, common.ErrorInvalidValue
	}

	dist := 0.0
	for i := range a {
		dist += math.Abs(math.Pow(a[i], float64(order)) - math.Pow(b[i], float64(order)))
	}
	return dist, nil
}

// ZStarTable renders the two-sided z* reference table as markdown.
func ZStarTable() string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"alpha", "z*"})
	for _, row := range zStarRows {
		w.AppendRow(table.Row{row.Level, row.ZStar})
	}
	return w.RenderMarkdown()
}

func applyMask(data []float64, mask []bool) []float64 {
	res := make([]float64, 0, len(data))
	for i, keep := range mask {
		if keep {
			res = append(res, data[i])
		}
	}
	return res
}
