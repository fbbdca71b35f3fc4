package logger

import (
	"strings"

	"go.uber.org/zap"
)

// NewAppLogger builds the process logger. APP_ENV=local switches to the
// development encoder.
func NewAppLogger(env ...string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if len(env) > 0 && strings.EqualFold(env[0], "local") {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	_ = l.Sync()
}
