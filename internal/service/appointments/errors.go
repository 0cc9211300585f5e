package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда живой встречи для заявки нет
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidDate возвращается при некорректной дате встречи
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidTime возвращается при некорректном времени встречи
	// Время должно иметь 30-минутную гранулярность
	ErrInvalidTime = errors.New("invalid appointment time")
)
