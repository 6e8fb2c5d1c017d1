package delete_appointment

import (
	"context"
)

type Dashboard interface {
	Delete(ctx context.Context, id int64, confirmed bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
