// Package logger provides a small leveled logger shared by all components.
package logger

import (
	"log"
	"os"
)

type Logger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

func New() *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
		debugLogger: log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime),
	}
}

func (l *Logger) Info(format string, v ...any) {
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	l.debugLogger.Printf(format, v...)
}

func (l *Logger) Fatal(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
	os.Exit(1)
}

// Default is the package-level logger used when no instance is injected.
var Default = New()

func Info(format string, v ...any) {
	Default.Info(format, v...)
}

func Error(format string, v ...any) {
	Default.Error(format, v...)
}

func Debug(format string, v ...any) {
	Default.Debug(format, v...)
}

func Fatal(format string, v ...any) {
	Default.Fatal(format, v...)
}
