package booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	// или истекла
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrInvalidTransition возвращается при недопустимом переходе мастера
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// ErrUnknownService возвращается при выборе услуги вне каталога
	ErrUnknownService = errors.New("unknown service")

	// ErrUnknownSlot возвращается при выборе слота вне 12-слотового каталога
	ErrUnknownSlot = errors.New("unknown time slot")

	// ErrSlotUnavailable возвращается при выборе занятого слота
	ErrSlotUnavailable = errors.New("time slot is not available")

	// ErrMissingDateTime возвращается защитной валидацией перед отправкой,
	// когда в черновике нет даты или времени. До API такой запрос не доходит.
	ErrMissingDateTime = errors.New("booking draft is missing date or time")

	// ErrInvalidContact возвращается при пустых контактных данных
	ErrInvalidContact = errors.New("contact form is incomplete")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая ещё выполняется
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrSlotTaken возвращается, когда бэкенд сообщил, что выбранный слот
	// только что заняли. Мастер принудительно возвращается на шаг выбора
	// даты и времени.
	ErrSlotTaken = errors.New("time slot was just booked")

	// ErrInternal возвращается при прочих ошибках отправки
	ErrInternal = errors.New("booking: internal error")
)
