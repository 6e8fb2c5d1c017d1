package verify_admin

import (
	"context"
)

type Dashboard interface {
	VerifyAdmin(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
