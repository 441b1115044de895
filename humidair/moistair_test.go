package humidair

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Энтальпия линейна по влагосодержанию с наклоном (1,84t+2501)/1000
func Test_Enthalpy_Linear(t *testing.T) {
	t0 := 30.0
	slope := (1.84*t0 + 2501) / 1000
	for _, d := range []float64{0, 1, 5, 10, 20} {
		h := Enthalpy(t0, d)
		assert.InDelta(t, h, Enthalpy(t0, 0)+d*slope, 1e-12)
	}
	assert.InDelta(t, Enthalpy(30, 0), 1.006*30, 1e-12)
}

// Влагосодержание и плотность при нормальных условиях.
// Notes:
//
//	Контрольные значения: 25 С, 50% -> d около 9,9 г/кг с.в.,
//	плотность около 1,18 кг/м3 (таблицы влажного воздуха).
func Test_HumidityState(t *testing.T) {
	d, rho, err := HumidityState(101325, 25, 0.5)
	assert.NoError(t, err)
	assert.InDelta(t, d, 9.86, 0.1)
	assert.InDelta(t, rho, 1.178, 0.01)
}

// Сухой воздух: нулевое влагосодержание
func Test_HumidityState_Dry(t *testing.T) {
	d, rho, err := HumidityState(101325, 25, 0)
	assert.NoError(t, err)
	assert.Equal(t, d, 0.0)
	assert.InDelta(t, rho, 29.0*101325/(8.314*298.15)/1000, 1e-9)
}

// Относительная влажность вне диапазона [0; 1]
func Test_HumidityState_BadRH(t *testing.T) {
	var domainErr *DomainError

	_, _, err := HumidityState(101325, 25, 1.2)
	assert.ErrorAs(t, err, &domainErr)

	_, _, err = HumidityState(101325, 25, -0.1)
	assert.ErrorAs(t, err, &domainErr)
}

// Парциальное давление пара достигает полного давления
func Test_HumidityState_Oversaturated(t *testing.T) {
	var domainErr *DomainError

	_, _, err := HumidityState(2000, 25, 1.0)
	assert.ErrorAs(t, err, &domainErr)
}

// RelativeHumidity — обратная задача к HumidityState
func Test_RelativeHumidity_Inverse(t *testing.T) {
	for _, phi := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 1.0} {
		d, _, err := HumidityState(101325, 25, phi)
		assert.NoError(t, err)
		phi1, err := RelativeHumidity(101325, 25, d)
		assert.NoError(t, err)
		assert.True(t, math.Abs(phi1-phi) < 1e-9)
	}
}

func Test_RelativeHumidity_NegativeD(t *testing.T) {
	var domainErr *DomainError

	_, err := RelativeHumidity(101325, 25, -1)
	assert.ErrorAs(t, err, &domainErr)
}

// Абсолютная влажность насыщенного воздуха при 25 С около 23 г/м3
func Test_VolumetricHumidity(t *testing.T) {
	a, err := VolumetricHumidity(25, 1.0)
	assert.NoError(t, err)
	assert.InDelta(t, a, 23.0, 0.3)

	a, err = VolumetricHumidity(25, 0.5)
	assert.NoError(t, err)
	assert.InDelta(t, a, 11.5, 0.2)
}
