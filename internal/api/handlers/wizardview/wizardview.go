// Package wizardview общий HTTP response model для всех операций мастера
// бронирования: каждая операция возвращает один и тот же снимок сессии.
package wizardview

import (
	"github.com/brightdental/booking-web/internal/booking"
)

// Slot HTTP-представление слота расписания
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// ServiceOption элемент каталога услуг
type ServiceOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Confirmation итоговая сводка подтверждённой брони
type Confirmation struct {
	AppointmentID int64  `json:"appointmentId"`
	ServiceName   string `json:"serviceName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	WhatsAppURL   string `json:"whatsappUrl"`
	HomePath      string `json:"homePath"`
}

// Response снимок состояния сессии мастера
type Response struct {
	SessionID    string          `json:"sessionId"`
	Locale       string          `json:"locale"`
	RTL          bool            `json:"rtl"`
	State        string          `json:"state"`
	Service      string          `json:"service,omitempty"`
	Date         string          `json:"date,omitempty"`
	Time         string          `json:"time,omitempty"`
	Services     []ServiceOption `json:"services,omitempty"`
	Slots        []Slot          `json:"slots,omitempty"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
}

// FromView конвертирует снимок сессии в HTTP response
func FromView(v *booking.View) *Response {
	resp := &Response{
		SessionID: v.SessionID,
		Locale:    v.Locale.String(),
		RTL:       v.Locale.IsRTL(),
		State:     string(v.State),
		Service:   string(v.Service),
		Date:      v.Date,
		Time:      v.Time,
	}

	if len(v.Services) > 0 {
		resp.Services = make([]ServiceOption, len(v.Services))
		for i, s := range v.Services {
			resp.Services[i] = ServiceOption{ID: string(s.ID), Name: s.Name, Icon: s.Icon}
		}
	}

	if len(v.Slots) > 0 {
		resp.Slots = make([]Slot, len(v.Slots))
		for i, s := range v.Slots {
			resp.Slots[i] = Slot{Time: s.Label, Available: s.Available}
		}
	}

	if v.Confirmation != nil {
		resp.Confirmation = &Confirmation{
			AppointmentID: v.Confirmation.AppointmentID,
			ServiceName:   v.Confirmation.ServiceName,
			Date:          v.Confirmation.DisplayDate,
			Time:          v.Confirmation.SlotLabel,
			WhatsAppURL:   v.Confirmation.WhatsAppURL,
			HomePath:      v.Confirmation.HomePath,
		}
	}

	return resp
}
