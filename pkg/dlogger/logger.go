// Copyright © 2018 One Concern

// Package dlogger builds the zap logger used by playpub commands, from a log level name.
package dlogger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels, by increasing order of verbosity
const (
	LogLevelNone  = "none"
	LogLevelError = "error"
	LogLevelWarn  = "warn"
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// Levels lists the supported log levels
var Levels = []string{LogLevelNone, LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug}

// GetLogger returns a zap logger with the specified level.
//
// Logs are human-readable and go to stderr: stdout is reserved for the output of commands.
// Stack traces are only attached in debug mode.
func GetLogger(logLevel string) (*zap.Logger, error) {
	var lvl zapcore.Level
	switch logLevel {
	case LogLevelNone:
		return zap.NewNop(), nil
	case LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug:
		if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown log level %q, expected one of: %s", logLevel, strings.Join(Levels, ", "))
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.DisableStacktrace = lvl > zapcore.DebugLevel
	zapConfig.Sampling = nil
	return zapConfig.Build()
}
