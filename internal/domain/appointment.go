package domain

import "fmt"

// AppointmentStatus represents the status of a clinic appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Statuses lists every valid appointment status
var Statuses = []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled}

// ParseStatus validates a status string coming from a request or the backend
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// Patient represents a patient record owned by the clinic backend
type Patient struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Appointment represents an appointment record owned by the clinic backend.
// Service carries an already localized human-readable name, not a catalog id.
// AppointmentDate is "YYYY-MM-DD" and AppointmentTime is a slot label.
type Appointment struct {
	ID              int64             `json:"id"`
	PatientID       int64             `json:"patient_id"`
	Patient         *Patient          `json:"patient,omitempty"`
	Service         string            `json:"service"`
	AppointmentDate string            `json:"appointment_date"`
	AppointmentTime string            `json:"appointment_time"`
	Status          AppointmentStatus `json:"status"`
	Notes           *string           `json:"notes,omitempty"`
}

// IsConfirmed returns true if the appointment has been confirmed by the clinic
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// IsPending returns true if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == StatusPending
}

// PatientPhone returns the phone of the attached patient record, if any
func (a *Appointment) PatientPhone() string {
	if a.Patient == nil {
		return ""
	}
	return a.Patient.Phone
}

// PatientName returns the name of the attached patient record, if any
func (a *Appointment) PatientName() string {
	if a.Patient == nil {
		return ""
	}
	return a.Patient.Name
}
