// Package tcconvert converts between thermocouple EMF and hot junction
// temperature per GOST 8.585-2001 (ITS-90 polynomials). Only the
// type K (chromel-alumel) tables are carried so far.
package tcconvert

import (
	"math"

	"github.com/pvlab/engcalc/common"
)

// Type is the thermocouple type.
type Type int

const (
	TypeK Type = iota
)

// Direct polynomials, temperature [°C] -> EMF [mV].
var (
	// -270 °C to 0 °C
	kEmfNeg = []float64{
		0,
		3.9450128025e-2,
		2.3622373598e-5,
		-3.2858906784e-7,
		-4.9904828777e-9,
		-6.7509059173e-11,
		-5.7410327428e-13,
		-3.1088872894e-15,
		-1.0451609365e-17,
		-1.9889266878e-20,
		-1.6322697486e-23,
	}

	// 0 °C to 1372 °C, plus the exponential correction term
	// c0 * exp(c1 * (t - 126.9686)^2)
	kEmfPos = []float64{
		-1.7600413686e-2,
		3.8921204975e-2,
		1.8558770032e-5,
		-9.9457592874e-8,
		3.1840945719e-10,
		-5.6072844889e-13,
		5.6075059059e-16,
		-3.2020720003e-19,
		9.7151147152e-23,
		-1.2104721275e-26,
	}
)

const (
	kEmfPosC0 = 1.185976e-1
	kEmfPosC1 = -1.183432e-4
	kEmfPosT0 = 126.9686
)

// Inverse polynomials, EMF [mV] -> temperature [°C].
var (
	// -5.891 mV to 0 mV (-200 °C to 0 °C)
	kTempNeg = []float64{
		0,
		2.5173462e1,
		-1.1662878,
		-1.0833638,
		-8.9773540e-1,
		-3.7342377e-1,
		-8.6632643e-2,
		-1.0450598e-2,
		-5.1920577e-4,
	}

	// 0 mV to 20.644 mV (0 °C to 500 °C)
	kTempMid = []float64{
		0,
		2.508355e1,
		7.860106e-2,
		-2.503131e-1,
		8.315270e-2,
		-1.228034e-2,
		9.804036e-4,
		-4.413030e-5,
		1.057734e-6,
		-1.052755e-8,
	}

	// 20.644 mV to 54.886 mV (500 °C to 1372 °C)
	kTempHigh = []float64{
		-1.318058e2,
		4.830222e1,
		-1.646031,
		5.464731e-2,
		-9.650715e-4,
		8.802193e-6,
		-3.110810e-8,
	}
)

// kTempMidMaxEmf is the EMF at 500 °C, splitting the inverse ranges.
const kTempMidMaxEmf = 20.644

func polyval(coef []float64, x float64) float64 {
	res := 0.0
	for i := len(coef) - 1; i >= 0; i-- {
		res = res*x + coef[i]
	}
	return res
}

// EMF returns the cold-junction EMF [mV] for the hot junction
// temperature temp [°C].
func EMF(temp float64, tc Type) (float64, error) {
	if tc != TypeK {
		return 0, common.ErrorUnknownMode
	}

	if temp <= 0 {
		return polyval(kEmfNeg, temp), nil
	}
	d := temp - kEmfPosT0
	return polyval(kEmfPos, temp) + kEmfPosC0*math.Exp(kEmfPosC1*d*d), nil
}

// Temperature returns the hot junction temperature [°C] for the
// measured emf [mV]; coldJunction [°C] is added to the result.
func Temperature(emf, coldJunction float64, tc Type) (float64, error) {
	if tc != TypeK {
		return 0, common.ErrorUnknownMode
	}

	var coef []float64
	switch {
	case emf < 0:
		coef = kTempNeg
	case emf < kTempMidMaxEmf:
		coef = kTempMid
	default:
		coef = kTempHigh
	}
	return polyval(coef, emf) + coldJunction, nil
}
