package health

import (
	"context"
)

type BackendClient interface {
	Health(ctx context.Context) (map[string]interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
