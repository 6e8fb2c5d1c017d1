package admin

import "errors"

var (
	// ErrConfirmationRequired возвращается при удалении без явного
	// подтверждения. Удаление терминально, без подтверждения до бэкенда
	// запрос не доходит.
	ErrConfirmationRequired = errors.New("deletion requires explicit confirmation")

	// ErrInvalidStatus возвращается при неизвестном статусе или фильтре
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrNoPatientPhone возвращается, когда у записи нет телефона пациента
	// для сообщения
	ErrNoPatientPhone = errors.New("appointment has no patient phone")

	// ErrInternal возвращается при ошибках бэкенда
	ErrInternal = errors.New("admin: internal error")
)
