package logx

import (
	"go.uber.org/zap"
)

// New returns the process-wide logger. Service name goes on every entry so
// api and audit logs can be told apart when shipped to the same sink.
func New(service string) *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return l.With(zap.String("service", service))
}
