package logger

import (
	"log"
	"os"
	"strings"
)

// Logger là interface logging inject vào các service,
// để test có thể thay bằng implementation khác.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Level là mức log tối thiểu sẽ được ghi ra
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// LevelFromEnv đọc LOG_LEVEL (debug / info / error), không đặt thì là info
func LevelFromEnv() Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// DefaultLogger ghi qua log package chuẩn, lọc message theo level
type DefaultLogger struct {
	level Level
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.write(InfoLevel, "[INFO] ", format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.write(ErrorLevel, "[ERROR] ", format, v...)
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.write(DebugLevel, "[DEBUG] ", format, v...)
}

func (l *DefaultLogger) write(level Level, prefix, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	log.Printf(prefix+format, v...)
}
