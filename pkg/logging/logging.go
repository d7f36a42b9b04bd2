// Package logging provides structured JSON logging for svgmotion.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents a log level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ParseLevel maps a config or flag value onto a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := levelRank[l]; !ok {
		return "", fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Fields are structured key/value pairs attached to a log entry.
type Fields map[string]any

// Logger provides structured logging.
type Logger struct {
	mu     *sync.Mutex
	level  *atomic.Value
	output *io.Writer
	fields Fields
}

// LogEntry represents a structured log entry.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     Level  `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
}

// NewLogger creates a new logger writing to stderr at the specified level.
func NewLogger(level Level) *Logger {
	var out io.Writer = os.Stderr
	lv := &atomic.Value{}
	lv.Store(level)
	return &Logger{
		mu:     &sync.Mutex{},
		level:  lv,
		output: &out,
		fields: Fields{},
	}
}

// With returns a child logger carrying additional fields. Children share
// output and level with their parent.
func (l *Logger) With(fields Fields) *Logger {
	merged := make(Fields, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{mu: l.mu, level: l.level, output: l.output, fields: merged}
}

// Component is shorthand for With(Fields{"component": name}).
func (l *Logger) Component(name string) *Logger {
	return l.With(Fields{"component": name})
}

func (l *Logger) enabled(level Level) bool {
	return levelRank[level] >= levelRank[l.level.Load().(Level)]
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, fields...)
}

// ErrorErr logs an error message with an error value.
func (l *Logger) ErrorErr(msg string, err error, fields ...Fields) {
	combined := Fields{"error": err.Error()}
	for _, f := range fields {
		for k, v := range f {
			combined[k] = v
		}
	}
	l.log(LevelError, msg, combined)
}

func (l *Logger) log(level Level, msg string, fields ...Fields) {
	if !l.enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Message:   msg,
		Fields:    make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		for k, v := range f {
			entry.Fields[k] = v
		}
	}
	if len(entry.Fields) == 0 {
		entry.Fields = nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(`{"level":"error","message":"failed to marshal log entry"}`)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	(*l.output).Write(append(data, '\n'))
}

// SetOutput sets the output writer for this logger and every logger derived from it.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.output = w
}

// SetLevel sets the log level.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(level)
}

var global atomic.Pointer[Logger]

func init() {
	global.Store(NewLogger(LevelInfo))
}

// SetGlobal replaces the global logger.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// Global returns the global logger.
func Global() *Logger {
	return global.Load()
}

// Debug logs to the global logger.
func Debug(msg string, fields ...Fields) {
	Global().Debug(msg, fields...)
}

// Info logs to the global logger.
func Info(msg string, fields ...Fields) {
	Global().Info(msg, fields...)
}

// Warn logs to the global logger.
func Warn(msg string, fields ...Fields) {
	Global().Warn(msg, fields...)
}

// Error logs to the global logger.
func Error(msg string, fields ...Fields) {
	Global().Error(msg, fields...)
}

// ErrorErr logs to the global logger with an error.
func ErrorErr(msg string, err error, fields ...Fields) {
	Global().ErrorErr(msg, err, fields...)
}

// With returns a child of the global logger with additional fields.
func With(fields Fields) *Logger {
	return Global().With(fields)
}
