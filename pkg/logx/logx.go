package logx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a logging severity
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var (
	current atomic.Int32
	std     = log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
)

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel changes the minimum level that is written
func SetLevel(level Level) {
	current.Store(int32(level))
}

// ParseLevel maps a textual level to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

func enabled(level Level) bool {
	return int32(level) >= current.Load()
}

func output(level Level, msg string) {
	if !enabled(level) {
		return
	}
	_ = std.Output(3, "["+levelNames[level]+"] "+msg)
}

func Debug(msg string)                  { output(LevelDebug, msg) }
func Debugf(format string, args ...any) { output(LevelDebug, fmt.Sprintf(format, args...)) }
func Info(msg string)                   { output(LevelInfo, msg) }
func Infof(format string, args ...any)  { output(LevelInfo, fmt.Sprintf(format, args...)) }
func Warn(msg string)                   { output(LevelWarn, msg) }
func Warnf(format string, args ...any)  { output(LevelWarn, fmt.Sprintf(format, args...)) }
func Error(msg string)                  { output(LevelError, msg) }
func Errorf(format string, args ...any) { output(LevelError, fmt.Sprintf(format, args...)) }

// Fatal logs and exits the process
func Fatal(msg string) {
	output(LevelFatal, msg)
	os.Exit(1)
}

// Fatalf logs and exits the process
func Fatalf(format string, args ...any) {
	output(LevelFatal, fmt.Sprintf(format, args...))
	os.Exit(1)
}
