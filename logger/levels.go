package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

// ParseLevel maps a config value ("debug", "info", "warn", "error") to a
// Level. The empty string is DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	}
	return DefaultLevel, fmt.Errorf("unknown log level %q", s)
}

// Type selects the record format.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType maps "text" or "json" to a Type. The empty string is TypeText.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	}
	return TypeText, fmt.Errorf("unknown log format %q", s)
}
