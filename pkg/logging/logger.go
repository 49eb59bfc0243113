// Package logging provides tooling for structured logging.
// With logging, you can use context to add logging details to your call stack.
package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

// Default is the logger used when no explicit Logger is supplied.
// Its level is resolved from LOG_LEVEL, LOGGER_LEVEL or LOGGING_LEVEL.
var Default = &Logger{}

func init() {
	if level, ok := LevelFromEnv(); ok {
		Default.Level = level
	}
}

type Logger struct {
	Out io.Writer

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// Separator is used to separate log entries from each other.
	// By default, it is a line break.
	Separator string
	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)
	// KeyFormatter will be used to format the logging field keys
	KeyFormatter func(string) string

	outLock sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelFatal, msg, ds...)
}

// Enabled tells if a log entry on the given level would be written.
func (l *Logger) Enabled(level Level) bool {
	return isLevelEnabled(l.Level, level)
}

func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if !l.Enabled(level) {
		return
	}
	e := make(entry)
	for _, d := range detailsFromContext(ctx) {
		d.addTo(l, e)
	}
	for _, d := range ds {
		if d != nil {
			d.addTo(l, e)
		}
	}
	e[l.formatKey(coalesce(l.LevelKey, "level"))] = level
	e[l.formatKey(coalesce(l.MessageKey, "message"))] = msg
	e[l.formatKey(coalesce(l.TimestampKey, "timestamp"))] = clock.Now().Format(time.RFC3339)

	bs, err := l.marshalFunc()(e)
	if err != nil {
		return
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, _ = l.writer().Write(append(bs, []byte(l.separator())...))
}

func (l *Logger) formatKey(key string) string {
	if l.KeyFormatter != nil {
		return l.KeyFormatter(key)
	}
	return key
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	return "\n"
}

func coalesce(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

type testingTB interface {
	Helper()
}

// Stub returns a debug level Logger that records its output into the returned buffer.
func Stub(tb testingTB) (*Logger, StubOutput) {
	tb.Helper()
	buf := &stubOutput{}
	l := &Logger{Level: LevelDebug, Out: buf}
	return l, buf
}

type StubOutput interface {
	io.Reader
	String() string
	Bytes() []byte
}

type stubOutput struct {
	m   sync.Mutex
	buf bytes.Buffer
}

func (o *stubOutput) Read(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Read(p)
}

func (o *stubOutput) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Write(p)
}

func (o *stubOutput) String() string {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.String()
}

func (o *stubOutput) Bytes() []byte {
	o.m.Lock()
	defer o.m.Unlock()
	return o.buf.Bytes()
}
