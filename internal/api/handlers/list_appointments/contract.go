package list_appointments

import (
	"context"

	"github.com/brightdental/booking-web/internal/admin"
)

type Dashboard interface {
	List(ctx context.Context, filter admin.StatusFilter) (*admin.ListResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
