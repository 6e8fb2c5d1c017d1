package list_appointments

import (
	"github.com/brightdental/booking-web/internal/admin"
	"github.com/brightdental/booking-web/internal/domain"
)

// PatientResponse HTTP-представление пациента записи
type PatientResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// AppointmentResponse HTTP-представление записи на приём
type AppointmentResponse struct {
	ID              int64            `json:"id"`
	Service         string           `json:"service"`
	AppointmentDate string           `json:"appointmentDate"`
	AppointmentTime string           `json:"appointmentTime"`
	Status          string           `json:"status"`
	Notes           *string          `json:"notes,omitempty"`
	Patient         *PatientResponse `json:"patient,omitempty"`
}

// StatsResponse сводка дашборда, всегда по полному списку записей
type StatsResponse struct {
	Total           int     `json:"total"`
	Confirmed       int     `json:"confirmed"`
	Pending         int     `json:"pending"`
	Cancelled       int     `json:"cancelled"`
	ExpectedRevenue float64 `json:"expectedRevenue"`
}

// ListAppointmentsResponse HTTP response model
type ListAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Stats        StatsResponse         `json:"stats"`
}

// FromListResult конвертирует результат сервиса в HTTP response
func FromListResult(result *admin.ListResult) *ListAppointmentsResponse {
	resp := &ListAppointmentsResponse{
		Appointments: make([]AppointmentResponse, len(result.Appointments)),
		Stats: StatsResponse{
			Total:           result.Stats.Total,
			Confirmed:       result.Stats.Confirmed,
			Pending:         result.Stats.Pending,
			Cancelled:       result.Stats.Cancelled,
			ExpectedRevenue: result.Stats.ExpectedRevenue,
		},
	}
	for i := range result.Appointments {
		resp.Appointments[i] = fromAppointment(&result.Appointments[i])
	}
	return resp
}

func fromAppointment(a *domain.Appointment) AppointmentResponse {
	out := AppointmentResponse{
		ID:              a.ID,
		Service:         a.Service,
		AppointmentDate: a.AppointmentDate,
		AppointmentTime: a.AppointmentTime,
		Status:          string(a.Status),
		Notes:           a.Notes,
	}
	if a.Patient != nil {
		out.Patient = &PatientResponse{
			ID:    a.Patient.ID,
			Name:  a.Patient.Name,
			Phone: a.Patient.Phone,
			Email: a.Patient.Email,
		}
	}
	return out
}
