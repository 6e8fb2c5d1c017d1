package clinicapi

import (
	"fmt"

	"github.com/brightdental/booking-web/internal/domain"
)

// CreatePatientRequest модель запроса на создание (или переиспользование)
// записи пациента
type CreatePatientRequest struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	Address        *string `json:"address,omitempty"`
	MedicalHistory *string `json:"medical_history,omitempty"`
	Allergies      *string `json:"allergies,omitempty"`
}

// CreatePatientResponse ответ бэкенда на создание пациента.
// Бэкенд отдаёт идентификатор либо в data.id, либо в корневом id —
// клиент терпим к обеим формам.
type CreatePatientResponse struct {
	ID   *int64      `json:"id"`
	Data *PatientRef `json:"data"`
}

// PatientRef вложенная ссылка на созданного пациента
type PatientRef struct {
	ID int64 `json:"id"`
}

// PatientID извлекает идентификатор пациента из любой из двух форм ответа
func (r *CreatePatientResponse) PatientID() (int64, error) {
	if r.Data != nil && r.Data.ID != 0 {
		return r.Data.ID, nil
	}
	if r.ID != nil && *r.ID != 0 {
		return *r.ID, nil
	}
	return 0, fmt.Errorf("%w: patient id missing from response", ErrInvalidResponse)
}

// UpdatePatientRequest частичное обновление записи пациента
type UpdatePatientRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// CreateAppointmentRequest модель запроса на создание записи на приём.
// Service — уже локализованное отображаемое имя услуги.
type CreateAppointmentRequest struct {
	PatientID       int64                    `json:"patient_id"`
	Service         string                   `json:"service"`
	AppointmentDate string                   `json:"appointment_date"`
	AppointmentTime string                   `json:"appointment_time"`
	Status          domain.AppointmentStatus `json:"status"`
	Notes           string                   `json:"notes"`
}

// UpdateAppointmentRequest частичное обновление записи на приём
type UpdateAppointmentRequest struct {
	Service         *string                   `json:"service,omitempty"`
	AppointmentDate *string                   `json:"appointment_date,omitempty"`
	AppointmentTime *string                   `json:"appointment_time,omitempty"`
	Status          *domain.AppointmentStatus `json:"status,omitempty"`
	Notes           *string                   `json:"notes,omitempty"`
}

// BookedSlotsResponse ответ бэкенда на запрос занятых слотов на дату
type BookedSlotsResponse struct {
	BookedSlots []string `json:"booked_slots"`
}

// errorResponse структурированная ошибка бэкенда
type errorResponse struct {
	Message string `json:"message"`
}
