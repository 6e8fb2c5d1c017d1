package update_appointment_status

import (
	"github.com/brightdental/booking-web/internal/domain"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // pending | confirmed | cancelled
}

// AppointmentResponse HTTP-представление обновлённой записи. Дашборд
// правит свою строку по этому ответу, не перезагружая список.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	Service         string  `json:"service"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
}

// FromAppointment конвертирует доменную запись в HTTP response
func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		Service:         a.Service,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Status:          string(a.Status),
		Notes:           a.Notes,
	}
}
