package clinicapi

import "errors"

var (
	// ErrRequestFailed возвращается при любой неуспешной операции: сетевые
	// ошибки, таймауты и не-2xx ответы бэкенда. Ретраев нет — решение о
	// повторе принимает вызывающая сторона.
	ErrRequestFailed = errors.New("clinicapi: request failed")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("clinicapi: invalid response")
)

// Фиксированные fallback-сообщения для create-операций, когда бэкенд не
// вернул структурированную ошибку
const (
	fallbackCreatePatient     = "Failed to create patient"
	fallbackCreateAppointment = "Failed to create appointment"
)

// ResponseError ошибка create-операции с сообщением бэкенда.
// Текст сообщения сохраняется дословно: мастер бронирования распознаёт
// конфликт слота по подстроке в нём.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return e.Message
}

func (e *ResponseError) Unwrap() error {
	return ErrRequestFailed
}
