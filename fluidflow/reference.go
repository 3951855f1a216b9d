package fluidflow

import "github.com/pvlab/engcalc/common"

// Lang selects the language of the Reference notation text.
type Lang int

const (
	LangEN Lang = iota
	LangRU
)

const referenceEq = `$$
\pi(\lambda) = \dfrac{p}{p_0} =
\left(1-\dfrac{\kappa-1}{\kappa+1}\lambda^2\right)^{\dfrac{\kappa}{\kappa-1}},\\
q(\lambda) = \dfrac{f}{f_0} =
\left(\dfrac{\kappa+1}{2}\right)^{\dfrac{1}{\kappa-1}}\lambda
\left(1-\dfrac{\kappa-1}{\kappa+1}\lambda^2\right)^{\dfrac{1}{\kappa-1}},\\
G = \dfrac{m q(\lambda) p_0 F_0}{\sqrt{T_0}} \left[\dfrac{kg}{s}\right]
$$`

const referenceExplEN = `$p$ — static pressure at smallest diameter, kPa; $p_0$ — total
pressure (atmospheric/ambient); $T_0$ — full air temperature, K;
$\kappa=1.4$ — a constant; $\lambda$ — dimensionless flow speed;
$\pi$ — dimensionless pressure; $q$ — dimensionless flow rate;
$m=0.0405$ — a constant; $F_0$ — smallest area of nozzle`

const referenceExplRU = `где $p$ — статическое давление в узком сечении мерного цилиндра,
$p_0$ — полное давление (атмосферное), $T_0$ — полная температура
воздуха, $\kappa=1{,}4$ — постоянная, $\lambda$ — безразмерная
скорость, $\pi$ — безразмерное давление, $q$ — безразмерный расход,
$m=0.0405$ — постоянная, $F_0$ — характерное сечение сопла.`

// Reference returns the equations and notation explanation for
// technical reports, ready to paste into a LaTeX document.
func Reference(lang Lang) (string, error) {
	switch lang {
	case LangEN:
		return referenceEq + "\n" + referenceExplEN, nil
	case LangRU:
		return referenceEq + "\n" + referenceExplRU, nil
	default:
		return "", common.ErrorUnknownMode
	}
}
