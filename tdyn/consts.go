package tdyn

// AirR is the specific gas constant of air [J/(kg K)].
const AirR = 287.06

type gasName string

const (
	gasAir gasName = "air"
	gasCO2 gasName = "co2"
	gasH2O gasName = "h2o"
	gasO2  gasName = "o2"
	gasH   gasName = "h"
)

// gasCoefOld holds the legacy specific-heat polynomial tables
// (kcal basis, scaled by 4186.8 to J, temperature argument
// (t + 273.15) * 1e-4).
var gasCoefOld = map[gasName][]float64{
	gasAir: {.252192, -.593306, 11.2026, -76.8453, 276.44, -515.04, 392.2},
	gasCO2: {.104706, 2.11718, -13.1785, 56.2368, -154.60, 243.69, -166.7},
	gasH2O: {.448938, -.544201, 13.4255, -65.9598, 159.88, -192.86, 89.17},
	gasO2:  {.208363, -.056140, 7.45289, -68.3167, 292.27, -614.50, 512.0},
	gasH:   {3.07088, 11.1537, -163.633, 1330.410, -5513.1, 11419., -9424.},
}

// gasCoefNew holds the current tables (kJ/(kg K) basis, temperature
// argument in °C). Only the first mixPolyTerms coefficients enter the
// mixture polynomial.
var gasCoefNew = map[gasName][]float64{
	gasAir: {1.004117, -2.754852e-6, 6.890151e-7, -8.358055e-10,
		3.343216e-13, 7.965546e-17, -1.175786e-19, 3.856751e-23, -4.344547e-27},
	gasCO2: {0.8148627, 1.104033e-3, -1.301332e-6, 1.323860e-9,
		-1.118083e-12, 6.735382e-16, -2.561333e-19, 5.420749e-23, -4.844547e-27},
	gasH2O: {1.858979, 2.066147e-4, 1.409027e-6, -2.616702e-9,
		3.558973e-12, -3.276883e-15, 1.857165e-18, -6.186433e-22, 1.112322e-25, -8.334864e-30},
	gasO2: {0.9146970, 1.026171e-4, 1.142046e-6, -2.773659e-9,
		3.127974e-12, -1.990618e-15, 7.322529e-19, -1.451865e-22, 1.200398e-26},
	gasH: {14.19732, 3.926051e-3, -1.924455e-5, 4.817688e-8,
		-6.327742e-11, 5.072448e-14, -2.57018e-17, 8.017741e-21, -1.402408e-24, 1.050463e-28},
}

// mixFrac is the mass fraction of each combustion product per unit of
// burnt fuel; gases absent here do not enter the mixture.
var mixFrac = map[gasName]float64{
	gasCO2: 0.75,
	gasH2O: 0.25,
}

// mixPolyTerms is the polynomial length of the mixture specific heat.
const mixPolyTerms = 7

const (
	// Stoichiometric mass yields of CO2 and H2O per unit of methane.
	co2Yield = 3.66666666
	h2oYield = 9.0
)
