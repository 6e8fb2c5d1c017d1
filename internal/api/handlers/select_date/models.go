package select_date

import (
	"time"

	"github.com/brightdental/booking-web/internal/domain"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2025-03-10"
}

// ParseDate парсит дату запроса в формате YYYY-MM-DD
func (r *SelectDateRequest) ParseDate() (time.Time, error) {
	return time.Parse(domain.DateFormat, r.Date)
}
