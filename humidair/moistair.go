package humidair

//--------------------------------------
// Свойства влажного воздуха
//--------------------------------------

const (
	// MH2O — молярная масса воды, г/моль
	MH2O = 18.0
	// MAir — молярная масса сухого воздуха, г/моль
	MAir = 29.0
	// R — универсальная газовая постоянная, Дж/(моль·К)
	R = 8.314
)

// Enthalpy — удельная энтальпия влажного воздуха (кДж/кг сухого воздуха)
// по температуре t (С) и влагосодержанию d (г/кг сухого воздуха).
func Enthalpy(t float64, d float64) float64 {
	return 1.006*t + d*(1.84*t+2501)/1000
}

// HumidityState — влагосодержание d (г/кг сухого воздуха) и плотность
// rho (кг/м3) влажного воздуха по полному давлению p (Па), температуре
// t (С) и относительной влажности phi (доли единицы).
func HumidityState(p float64, t float64, phi float64) (d float64, rho float64, err error) {
	if !(0 <= phi && phi <= 1) {
		return 0, 0, &DomainError{"Относительная влажность должна находиться в диапазоне [0; 1]"}
	}
	p_s, err := SaturationPressure(t)
	if err != nil {
		return 0, 0, err
	}

	// парциальные давления пара и сухого воздуха
	p_w := phi * p_s
	p_da := p - p_w
	if p_da <= 0 {
		return 0, 0, &DomainError{"Парциальное давление пара не должно достигать полного давления"}
	}

	d = 1000 * p_w / p_da * (MH2O / MAir)
	rho = (MH2O*p_w + MAir*p_da) / (R * (t + 273.15)) / 1000
	return d, rho, nil
}

// RelativeHumidity — относительная влажность (доли единицы) по полному
// давлению p (Па), температуре t (С) и влагосодержанию d (г/кг сухого
// воздуха). Обратная задача к HumidityState.
func RelativeHumidity(p float64, t float64, d float64) (float64, error) {
	if d < 0 {
		return 0, &DomainError{"Влагосодержание не должно быть отрицательным"}
	}
	p_s, err := SaturationPressure(t)
	if err != nil {
		return 0, err
	}

	// отношение парциальных давлений пара и сухого воздуха
	m := d / 1000 * (MAir / MH2O)
	p_w := p * m / (1 + m)

	return p_w / p_s, nil
}

// VolumetricHumidity — абсолютная (объёмная) влажность воздуха (г/м3)
// по температуре t (С) и относительной влажности phi (доли единицы).
// Плотность пара вычисляется по уравнению состояния идеального газа.
func VolumetricHumidity(t float64, phi float64) (float64, error) {
	if !(0 <= phi && phi <= 1) {
		return 0, &DomainError{"Относительная влажность должна находиться в диапазоне [0; 1]"}
	}
	p_s, err := SaturationPressure(t)
	if err != nil {
		return 0, err
	}
	return phi * p_s * MH2O / (R * (t + 273.15)), nil
}
