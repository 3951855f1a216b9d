package model

import "fmt"

// Histogram is a binned sample: len(Edges) == len(Frequencies) + 1.
type Histogram struct {
	Frequencies []float64 `json:"freq,omitempty"`
	Edges       []float64 `json:"edges,omitempty"`
}

func (h *Histogram) Bins() int {
	if h == nil {
		return 0
	}
	return len(h.Frequencies)
}

func (h *Histogram) Valid() bool {
	if h == nil {
		return false
	}
	return len(h.Frequencies) > 0 && len(h.Edges) == len(h.Frequencies)+1
}

type ChiSquareResult struct {
	Frequencies []float64 `json:"freq,omitempty"`
	Edges       []float64 `json:"edges,omitempty"`
	// Expected holds the per-bin frequencies under the fitted normal.
	Expected  []float64 `json:"expected,omitempty"`
	Critical  float64   `json:"chi2cr,omitempty"`
	Statistic float64   `json:"chi2,omitempty"`
	Mean      float64   `json:"av,omitempty"`
	StdDev    float64   `json:"std,omitempty"`
	DOF       int       `json:"dof,omitempty"`
	Alpha     float64   `json:"alpha,omitempty"`

	// NormalityHeld and NormalityRejected are always mutually
	// exclusive; a statistic equal to the critical value rejects.
	NormalityHeld     bool `json:"h0"`
	NormalityRejected bool `json:"h1"`
}

func (r *ChiSquareResult) DebugString() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("chi2: %v, chi2cr: %v, h0: %v", r.Statistic, r.Critical, r.NormalityHeld)
}

type ConfidenceInterval struct {
	Lower     float64 `json:"l,omitempty"`
	Upper     float64 `json:"u,omitempty"`
	HalfWidth float64 `json:"rng,omitempty"`
	Mean      float64 `json:"mean,omitempty"`
	Variance  float64 `json:"var,omitempty"`
	StdDev    float64 `json:"std,omitempty"`
	TStat     float64 `json:"t,omitempty"`
	N         int     `json:"n,omitempty"`
	Alpha     float64 `json:"alpha,omitempty"`
}

func (c *ConfidenceInterval) Contains(x float64) bool {
	if c == nil {
		return false
	}
	return c.Lower <= x && x <= c.Upper
}

func (c *ConfidenceInterval) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("[%v - %v - %v]", c.Lower, c.Mean, c.Upper)
}

// CleanResult is the output of the sample cleaning pipeline.
type CleanResult struct {
	Values []float64 `json:"values,omitempty"`
	Mask   []bool    `json:"mask,omitempty"`
	// Interval is the confidence interval of the retained values.
	Interval *ConfidenceInterval `json:"interval,omitempty"`
}
