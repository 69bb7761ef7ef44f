package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelError = zap.ErrorLevel
	LevelWarn  = zap.WarnLevel
	LevelInfo  = zap.InfoLevel
	LevelDebug = zap.DebugLevel
)

const callerSkip = 1

var levels = map[string]zapcore.Level{
	"error": LevelError,
	"warn":  LevelWarn,
	"info":  LevelInfo,
	"debug": LevelDebug,
}
