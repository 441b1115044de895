package humidair

import "math"

//--------------------------------------
// Линия насыщения водяного пара
//--------------------------------------

// Методика расчёта взята из документа
// 'Revised Release on the IAPWS Industrial Formulation 1997 for the
// Thermodynamic Properties of Water and Steam'
// Раздел '8 Equations for Region 4'
// http://www.iapws.org/relguide/IF97-Rev.pdf

// Границы применимости уравнения линии насыщения:
// от тройной точки воды до критической точки.
const (
	TSatMin = 273.15     // минимальная температура, К
	TSatMax = 647.096    // максимальная (критическая) температура, К
	PSatMin = 611.212677 // минимальное давление, Па
	PSatMax = 22.064e6   // максимальное (критическое) давление, Па
)

// Коэффициенты n1...n10 уравнения линии насыщения.
// Таблица общая для прямого (температура → давление) и обратного
// (давление → температура) расчёта: обе функции описывают одну и ту же
// физическую кривую.
var nSat = [10]float64{
	0.11670521452767e4, -0.72421316703206e6, -0.17073846940092e2,
	0.12020824702470e5, -0.32325550322333e7, 0.14915108613530e2,
	-0.48232657361591e4, 0.40511340542057e6, -0.23855557567849,
	0.65017534844798e3,
}

// SaturationPressureK — давление насыщения (Па) по заданной температуре (К).
func SaturationPressureK(T float64) (float64, error) {
	if !(TSatMin <= T && T <= TSatMax) {
		return 0, &DomainError{"Значение температуры должно находиться в диапазоне [273,15 К; 647,096 К]"}
	}
	// особая точка T == n10 лежит выше критической температуры
	// и отсекается проверкой диапазона
	theta := T + nSat[8]/(T-nSat[9])
	A := theta*theta + nSat[0]*theta + nSat[1]
	B := nSat[2]*theta*theta + nSat[3]*theta + nSat[4]
	C := nSat[5]*theta*theta + nSat[6]*theta + nSat[7]
	disc := B*B - 4*A*C
	if disc < 0 {
		return 0, &DomainError{"Дискриминант уравнения линии насыщения отрицателен"}
	}
	// устойчивая форма корня квадратного уравнения;
	// второй корень физического смысла не имеет
	x := 2 * C / (-B + math.Sqrt(disc))
	return x * x * x * x * 1e6, nil
}

// SaturationPressure — давление насыщения (Па) по заданной температуре (С).
func SaturationPressure(t float64) (float64, error) {
	return SaturationPressureK(t + 273.15)
}

// SaturationTemperatureK — температура насыщения (К) по заданному давлению (Па).
func SaturationTemperatureK(p float64) (float64, error) {
	if !(PSatMin <= p && p <= PSatMax) {
		return 0, &DomainError{"Значение давления должно находиться в диапазоне [611,213 Па; 22,064 МПа]"}
	}
	beta := math.Pow(p/1e6, 0.25)
	E := beta*beta + nSat[2]*beta + nSat[5]
	F := nSat[0]*beta*beta + nSat[3]*beta + nSat[6]
	G := nSat[1]*beta*beta + nSat[4]*beta + nSat[7]
	disc := F*F - 4*E*G
	if disc < 0 {
		return 0, &DomainError{"Дискриминант уравнения линии насыщения отрицателен"}
	}
	// знак перед корнем отличается от прямого расчёта:
	// так выбирается физическая ветвь кривой
	D := 2 * G / (-F - math.Sqrt(disc))
	disc = (nSat[9]+D)*(nSat[9]+D) - 4*(nSat[8]+nSat[9]*D)
	if disc < 0 {
		return 0, &DomainError{"Дискриминант уравнения для температуры насыщения отрицателен"}
	}
	return (nSat[9] + D - math.Sqrt(disc)) / 2, nil
}

// SaturationTemperature — температура насыщения (С) по заданному давлению (Па).
func SaturationTemperature(p float64) (float64, error) {
	T, err := SaturationTemperatureK(p)
	if err != nil {
		return 0, err
	}
	return T - 273.15, nil
}
