package logging

import (
	"encoding/json"
	"io"
	"log"
	"time"
)

// Logger emits one JSON object per line.
type Logger struct {
	base *log.Logger
}

// New creates a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{base: log.New(w, "", 0)} // no prefix; we emit JSON ourselves
}

// Info logs at INFO level with optional structured fields.
func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit("INFO", msg, fields)
}

// Error logs at ERROR level with optional structured fields.
func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit("ERROR", msg, fields)
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	m := make(map[string]any, 3+len(fields))
	m["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg
	for k, v := range fields {
		m[k] = v
	}

	b, err := json.Marshal(m)
	if err != nil {
		// Marshal failures must not take the process down; fall back to plain text.
		l.base.Printf(`{"ts":%q,"level":%q,"msg":"log marshal failed"}`, time.Now().UTC().Format(time.RFC3339Nano), "ERROR")
		return
	}
	l.base.Println(string(b))
}
