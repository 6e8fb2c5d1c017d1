package submit_booking

import (
	"github.com/brightdental/booking-web/internal/api/handlers/wizardview"
	"github.com/brightdental/booking-web/internal/booking"
)

// SubmitBookingRequest HTTP request model с контактными данными третьего шага
type SubmitBookingRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Notes    string `json:"notes,omitempty"`
}

// ToContactForm конвертирует HTTP запрос в форму потока бронирования
func (r *SubmitBookingRequest) ToContactForm() booking.ContactForm {
	return booking.ContactForm{
		FullName: r.FullName,
		Phone:    r.Phone,
		Email:    r.Email,
		Notes:    r.Notes,
	}
}

// FailureResponse тело ошибки отправки. Несёт свежий снимок сессии:
// после конфликта слота мастер возвращается на шаг выбора времени,
// и клиенту нужно новое состояние, а не только текст ошибки.
type FailureResponse struct {
	Message string               `json:"message"`
	View    *wizardview.Response `json:"view,omitempty"`
}
