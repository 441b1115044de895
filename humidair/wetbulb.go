package humidair

import (
	"math"

	"github.com/hhkbp2/go-logging"
)

//--------------------------------------
// Температура мокрого термометра и точка росы
//--------------------------------------

// Температура мокрого термометра — температура насыщения, при которой
// энтальпия насыщенного воздуха равна энтальпии исходного влажного
// воздуха (адиабатическое насыщение при постоянной энтальпии).
// Уравнение h_sat(t) = h решается методом секущих: аналитической
// производной влагосодержания насыщения по температуре нет.

const (
	// допуск сходимости по энтальпии, кДж/кг
	hTol = 0.001
	// предельное число итераций метода секущих
	maxIter = 100
)

// DewPoint — температура точки росы (С) по температуре t (С) и
// относительной влажности phi (доли единицы): температура насыщения
// при парциальном давлении пара.
func DewPoint(t float64, phi float64) (float64, error) {
	if !(0 <= phi && phi <= 1) {
		return 0, &DomainError{"Относительная влажность должна находиться в диапазоне [0; 1]"}
	}
	p_s, err := SaturationPressure(t)
	if err != nil {
		return 0, err
	}
	// при phi == 0 парциальное давление пара ниже тройной точки,
	// точка росы не определена
	return SaturationTemperature(phi * p_s)
}

// WetBulbTemperature — температура мокрого термометра t_wb (С) и
// температура точки росы t_dp (С) по полному давлению p (Па),
// температуре сухого термометра t (С) и относительной влажности phi
// (доли единицы).
func WetBulbTemperature(p float64, t float64, phi float64) (t_wb float64, t_dp float64, err error) {
	logger := logging.GetLogger("humidair")

	// энтальпия исходного влажного воздуха — цель итерационного процесса
	d, _, err := HumidityState(p, t, phi)
	if err != nil {
		return 0, 0, err
	}
	h := Enthalpy(t, d)

	t_dp, err = DewPoint(t, phi)
	if err != nil {
		return 0, 0, err
	}

	// энтальпия насыщенного воздуха (phi = 1) при температуре x
	h_sat := func(x float64) (float64, error) {
		d_s, _, err := HumidityState(p, x, 1.0)
		if err != nil {
			return 0, err
		}
		return Enthalpy(x, d_s), nil
	}

	// начальные точки и начальный наклон секущей
	x0 := 0.75 * t
	y0, err := h_sat(x0)
	if err != nil {
		return 0, 0, err
	}
	x1 := x0 + 1
	y1, err := h_sat(x1)
	if err != nil {
		return 0, 0, err
	}
	dydx := y1 - y0

	for i := 0; i < maxIter; i++ {
		if math.Abs(y1-h) <= hTol {
			logger.Debugf("метод секущих сошёлся за %d итераций: t_wb = %.4f С", i, x1)
			return x1, t_dp, nil
		}
		if dydx == 0 {
			return 0, 0, &NumericalInstabilityError{"наклон секущей обратился в ноль"}
		}
		x1 = x0 + (h-y0)/dydx
		y1, err = h_sat(x1)
		if err != nil {
			return 0, 0, err
		}
		dydx = (y1 - y0) / (x1 - x0)
		x0, y0 = x1, y1
		logger.Debugf("итерация %d: x = %.6f, h_sat = %.6f, цель %.6f", i+1, x1, y1, h)
	}

	return 0, 0, &ConvergenceError{Iterations: maxIter, Residual: math.Abs(y1 - h)}
}
