// Package fluidflow holds the gas-dynamic functions of a compressible
// air flow: the dimensionless pressure, speed and flow rate relations
// and the nozzle mass flow equation.
package fluidflow

import "math"

const (
	// Kappa is the adiabatic index of air.
	Kappa = 1.4
	// FlowCoef is the coefficient m in G = m q(lambda) p0 F0 / sqrt(T0).
	FlowCoef = 0.0405
)

// PiLambda returns the dimensionless pressure p/p0 for the
// dimensionless flow speed lambda.
func PiLambda(lambda float64) float64 {
	return math.Pow(1-(Kappa-1)/(Kappa+1)*lambda*lambda, Kappa/(Kappa-1))
}

// LambdaPi returns the dimensionless flow speed for the dimensionless
// pressure pi. Inverse of PiLambda.
func LambdaPi(pi float64) float64 {
	return math.Sqrt((1 - math.Pow(pi, (Kappa-1)/Kappa)) * (Kappa + 1) / (Kappa - 1))
}

// QLambda returns the dimensionless flow rate f/f0 for the
// dimensionless flow speed lambda. QLambda(1) == 1.
func QLambda(lambda float64) float64 {
	return math.Pow((Kappa+1)/2, 1/(Kappa-1)) * lambda *
		math.Pow(1-(Kappa-1)/(Kappa+1)*lambda*lambda, 1/(Kappa-1))
}

// MassFlow returns the air mass flow rate [kg/s] for the dimensionless
// flow rate q through the smallest nozzle section f0 [m^2] at total
// pressure p0 [kPa] and total temperature t0 [K].
func MassFlow(q, p0, f0, t0 float64) float64 {
	return FlowCoef * q * p0 * f0 / math.Sqrt(t0)
}
