package humidair

import "fmt"

//--------------------------------------
// Ошибки расчёта
//--------------------------------------

// Расчётные функции никогда не возвращают NaN или бесконечность
// вместе с nil-ошибкой: выход за область применимости и сбои
// итерационного процесса всегда оформляются типизированной ошибкой.
// Повторный запуск с другими начальными условиями — решение вызывающей
// стороны.

// DomainError — входные параметры вне области применимости расчёта.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

// NumericalInstabilityError — наклон секущей обратился в ноль,
// итерационный процесс продолжать нельзя.
type NumericalInstabilityError struct {
	Msg string
}

func (e *NumericalInstabilityError) Error() string { return e.Msg }

// ConvergenceError — метод секущих не сошёлся за предельное число итераций.
type ConvergenceError struct {
	Iterations int     // число выполненных итераций
	Residual   float64 // остаточная невязка по энтальпии, кДж/кг
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("метод секущих не сошёлся за %d итераций (невязка %g кДж/кг)",
		e.Iterations, e.Residual)
}
