package logger

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "ERROR"
	}
}

// Logger writes structured JSON entries to stderr. Stdout is reserved for
// the report, so nothing here may touch it. Default level is warn.
type Logger struct {
	service string
	level   Level
	out     io.Writer
}

func New(service string) *Logger {
	return &Logger{service: service, level: LevelWarn, out: os.Stderr}
}

func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{service: l.service, level: level, out: l.out}
}

func (l *Logger) WithOutput(out io.Writer) *Logger {
	return &Logger{service: l.service, level: l.level, out: out}
}

func (l *Logger) log(level Level, action string, fields map[string]any, err error) {
	if level < l.level {
		return
	}
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level.String(),
		"service":   l.service,
		"action":    action,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Debug(action string, fields map[string]any) { l.log(LevelDebug, action, fields, nil) }
func (l *Logger) Info(action string, fields map[string]any)  { l.log(LevelInfo, action, fields, nil) }
func (l *Logger) Warn(action string, fields map[string]any)  { l.log(LevelWarn, action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log(LevelError, action, fields, err)
}
