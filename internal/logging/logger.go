package logging

import (
	"os"
	"time"

	"task-planner/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger: a console core on stdout and, when
// cfg.File is set, a JSON core writing to a rotated file
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	return newLogger(cfg, zapcore.AddSync(os.Stdout))
}

func newLogger(cfg config.LoggingConfig, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level, err := ResolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), console, level),
	}

	if cfg.File != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
			}),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)), nil
}

// ResolveLevel picks the configured level; the debug flag or environment
// forces debug
func ResolveLevel(cfg config.LoggingConfig) (zapcore.Level, error) {
	if cfg.Debug || DebugEnabled() {
		return zapcore.DebugLevel, nil
	}
	if cfg.Level == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(cfg.Level)
}

// Measure logs how long an operation took at debug level. Use as
//
//	defer logging.Measure(logger, "search tasks")()
func Measure(logger *zap.Logger, operation string) func() {
	start := time.Now()
	return func() {
		logger.Debug("operation finished",
			zap.String("operation", operation),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
