package tdyn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPMethaneAir(t *testing.T) {
	// air between 0 and 100 °C, textbook value ~1005 J/(kg K)
	cpOld := CPMethane(0, 100, 0, false)
	assert.InDelta(t, 1004.7, cpOld, 2)

	cpNew := CPMethane(0, 100, 0, true)
	assert.InDelta(t, 1008.6, cpNew, 2)
}

func TestCPMethaneMixture(t *testing.T) {
	air := CPMethane(0, 400, 0, false)
	mix := CPMethane(0, 400, 0.05, false)

	assert.Greater(t, air, 0.0)
	assert.Greater(t, mix, 0.0)
	// combustion products shift the specific heat away from pure air
	assert.NotEqual(t, air, mix)
}

func TestAirEnthalpy(t *testing.T) {
	h300 := AirEnthalpy(300, Options{})
	h400 := AirEnthalpy(400, Options{})

	assert.Greater(t, h300, 0.0)
	assert.Greater(t, h400, h300)

	// h = T * cp, cp of air ~1005 J/(kg K) near ambient
	assert.InDelta(t, 300*1005, h300, 3000)
}

func TestAirEntropyReferenceState(t *testing.T) {
	assert.InDelta(t, 0, AirEntropy(273.15, 101325, Options{}), 1e-9)
	assert.InDelta(t, 0, AirEntropy(273.15, 101325, Options{UseNewTables: true}), 1e-9)
}

func TestAirPressureRoundTrip(t *testing.T) {
	const (
		tempK      = 310.0
		pressurePa = 150000.0
	)

	for _, opts := range []Options{{}, {UseNewTables: true}} {
		s := AirEntropy(tempK, pressurePa, opts)
		require.False(t, s == 0)

		got := AirPressure(s, tempK, opts)
		assert.InEpsilon(t, pressurePa, got, 1e-6)
	}
}

func TestAirTemperatureRoundTrip(t *testing.T) {
	const (
		tempK      = 310.0
		pressurePa = 150000.0
	)

	for _, opts := range []Options{
		{},
		{UseKilojoules: true},
		{UseNewTables: true, UseKilojoules: true},
	} {
		s := AirEntropy(tempK, pressurePa, opts)
		got := AirTemperature(s, pressurePa, tempK, opts)
		assert.InEpsilon(t, tempK, got, 1e-6)
	}
}
