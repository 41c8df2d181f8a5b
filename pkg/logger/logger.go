package logger

import (
	"log"

	"go.uber.org/zap"
)

const (
	EnvLocal = "local"
	EnvProd  = "production"
)

var global = zap.NewNop()

// Init builds the process-wide zap logger for the given environment and
// replaces the package global. Call once from main before anything logs.
func Init(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)

	switch env {
	case EnvProd:
		l, err = zap.NewProduction()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("cannot build logger: %s", err)
	}

	global = l

	return l
}

// Logger returns the process-wide zap logger.
func Logger() *zap.Logger {
	return global
}

func Debug(msg string, fields ...zap.Field) {
	global.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Error(msg, fields...)
}

func Sync() {
	_ = global.Sync()
}
