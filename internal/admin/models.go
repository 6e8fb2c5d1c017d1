package admin

import (
	"fmt"

	"github.com/brightdental/booking-web/internal/domain"
)

// StatusFilter фильтр списка записей в дашборде
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterConfirmed StatusFilter = "confirmed"
	FilterPending   StatusFilter = "pending"
	FilterCancelled StatusFilter = "cancelled"
)

// ParseStatusFilter валидирует фильтр; пустая строка означает "all"
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" {
		return FilterAll, nil
	}
	switch StatusFilter(s) {
	case FilterAll, FilterConfirmed, FilterPending, FilterCancelled:
		return StatusFilter(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Stats сводка дашборда. ExpectedRevenue — оценка для отображения
// (confirmed × средний чек), а не биллинговые данные.
type Stats struct {
	Total           int
	Confirmed       int
	Pending         int
	Cancelled       int
	ExpectedRevenue float64
}

// ListResult список записей после фильтрации плюс сводка по полному списку
type ListResult struct {
	Appointments []domain.Appointment
	Stats        Stats
}
