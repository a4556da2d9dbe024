package logger

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

type Logger struct {
	l     *log.Logger
	level Level
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l, level: LevelInfo}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) LogErrorf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Error]: %s\n", msg)
}

func (l *Logger) LogInfo(format string, v ...any) {
	if l.level > LevelInfo {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Info]: %s\n", msg)
}

func (l *Logger) LogDebug(format string, v ...any) {
	if l.level > LevelDebug {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Debug]: %s\n", msg)
}

// TraceID returns the trace id of the span carried by ctx, formatted as a UUID,
// or an empty string when ctx carries none.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}

	return uuid.UUID(sc.TraceID()).String()
}

// NewContextWithTrace attaches a fresh span context to ctx so every log line of
// a run shares one trace id.
func NewContextWithTrace(ctx context.Context) context.Context {
	var spanID trace.SpanID

	spanUUID := uuid.New()
	copy(spanID[:], spanUUID[:len(spanID)])

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID(uuid.New()),
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	return trace.ContextWithSpanContext(ctx, sc)
}
