// Package tdyn holds the thermodynamic relations of air and natural
// gas combustion products: mixture specific heat and the air
// enthalpy/entropy/temperature/pressure equations built on it.
package tdyn

import "math"

// Options selects the coefficient tables and the unit scale of the
// air state functions.
type Options struct {
	// UseNewTables selects the kJ-basis polynomial tables instead of
	// the legacy kcal-basis ones.
	UseNewTables bool
	// UseKilojoules evaluates the exponentials on a kJ scale to stay
	// inside the float64 range at high entropies.
	UseKilojoules bool
}

// CPMethane returns the specific isobaric heat [J/(kg K)] of natural
// gas combustion products between tStart and tEnd [°C]. afr is the
// fuel fraction of the mixture in [0, 1]; afr = 0 gives pure air.
func CPMethane(tStart, tEnd, afr float64, useNew bool) float64 {
	coef := gasCoefOld
	var t1, t2, ts float64
	if useNew {
		coef = gasCoefNew
		t1, t2 = tStart, tEnd
		ts = (tStart + tEnd) / 2
	} else {
		t1 = (tStart + 273.15) * 1e-4
		t2 = (tEnd + 273.15) * 1e-4
		ts = (t1 + t2) / 2
	}

	gAir := 1 - afr
	gCO2 := mixFrac[gasCO2] * afr * co2Yield
	gH2O := mixFrac[gasH2O] * afr * h2oYield

	poly := make([]float64, mixPolyTerms)
	for i := range poly {
		poly[i] = coef[gasAir][i]*gAir + coef[gasCO2][i]*gCO2 + coef[gasH2O][i]*gH2O
	}

	if useNew {
		cp := 0.0
		for i, p := range poly {
			cp += p * math.Pow(ts, float64(i)) * float64(i+1)
		}
		return cp * 1000
	}

	cp := poly[0] + poly[1]*(t1+t2)
	for i := 2; i < len(poly); i++ {
		cp += poly[i] * math.Pow(ts, float64(i)) * float64(i+1)
	}
	return cp * 4186.8
}

// AirEnthalpy returns the specific enthalpy [J/kg] of air from 0 °C to
// tempK [K].
func AirEnthalpy(tempK float64, opts Options) float64 {
	cp := CPMethane(0, tempK-273.15, 0, opts.UseNewTables)
	return tempK * cp
}

// AirEntropy returns the specific entropy [J/(kg K)] of air at tempK
// [K] and pressurePa [Pa], relative to 0 °C and 101325 Pa.
//
// The specific heat is evaluated with the kelvin value as the upper
// temperature; AirTemperature and AirPressure do the same, and the
// round-trips depend on all three agreeing.
func AirEntropy(tempK, pressurePa float64, opts Options) float64 {
	cp := CPMethane(0, tempK, 0, opts.UseNewTables)
	return cp*math.Log(tempK/273.15) - AirR*math.Log(pressurePa/101325)
}

// AirTemperature returns the air temperature [K] for a specific
// entropy [J/(kg K)] and pressure [Pa]. initTempK seeds the specific
// heat evaluation.
func AirTemperature(entropy, pressurePa, initTempK float64, opts Options) float64 {
	cp := CPMethane(0, initTempK, 0, opts.UseNewTables)
	if opts.UseKilojoules {
		cp /= 1000
		return math.Pow(
			math.Exp(entropy/1000)*math.Pow(pressurePa/101325, AirR/1000),
			1/cp,
		) * 273.15
	}
	return math.Pow(
		math.Exp(entropy)*math.Pow(pressurePa/101325, AirR),
		1/cp,
	) * 273.15
}

// AirPressure returns the air pressure [Pa] for a specific entropy
// [J/(kg K)] and temperature [K].
func AirPressure(entropy, tempK float64, opts Options) float64 {
	cp := CPMethane(0, tempK, 0, opts.UseNewTables)
	return math.Pow(
		math.Exp(-entropy)*math.Pow(tempK/273.15, cp),
		1/AirR,
	) * 101325
}
