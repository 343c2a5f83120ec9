package logger

import (
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger sets up the global zap logger: console plus rotated info/error files,
// and a sentry core when dsn is not empty.
// maxAge in days, rotationTime in hours, rotationSize in MB
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, dsn string) {
	initZap(projectName, logPath, maxAge, rotationTime, rotationSize, parseLevel(level), dsn)
}

func parseLevel(level string) zapcore.Level {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// sentryCoreFor sentry core reporting errors and above, nil if the client can't be created
func sentryCoreFor(dsn string) zapcore.Core {
	client, err := sentry.NewClient(sentry.ClientOptions{Dsn: dsn})
	if err != nil {
		Errorf("init sentry failed, err:%v", err)
		return nil
	}
	return NewSentryCore(SentryCoreConfig{
		Tags:  map[string]string{"project": yourProjectName},
		Level: zapcore.ErrorLevel,
	}, client)
}

// Sync flushes buffered entries
func Sync() {
	_ = zap.L().Sync()
}

func Debugf(template string, args ...interface{}) {
	zap.S().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	zap.S().Errorf(template, args...)
}

func Info(args ...interface{}) {
	zap.S().Info(args...)
}

func Warn(args ...interface{}) {
	zap.S().Warn(args...)
}

func Error(args ...interface{}) {
	zap.S().Error(args...)
}
