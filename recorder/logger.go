package recorder

import (
	"sync"

	"github.com/roadrunner-server/logquery/invocation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes level, event id, message and error through zap in the shape the
// recording core reads back.
type Logger struct {
	base *zap.Logger
	// enab answers IsEnabled. It is the base core unless the logger records below
	// the level it reports as enabled.
	enab   zapcore.LevelEnabler
	scopes *scopes
}

func NewLogger(base *zap.Logger) *Logger {
	return &Logger{
		base:   base,
		enab:   base.Core(),
		scopes: &scopes{},
	}
}

// Logger returns a Logger that records into r everything at or above min.
func (r *Recorder) Logger(min invocation.Level) *Logger {
	return NewLogger(zap.New(r.Core(min)))
}

// Zap exposes the underlying zap logger for code that logs through zap directly.
func (l *Logger) Zap() *zap.Logger {
	return l.base
}

// IsEnabled reports whether level is at or above the logger's minimum level.
func (l *Logger) IsEnabled(level invocation.Level) bool {
	return l.enab.Enabled(level.ZapLevel())
}

// Log writes one invocation. A nil err records a call without error.
func (l *Logger) Log(level invocation.Level, id invocation.EventID, msg string, err error, fields ...zap.Field) {
	ce := l.base.Check(level.ZapLevel(), msg)
	if ce == nil {
		return
	}

	zf := make([]zap.Field, 0, len(fields)+2)
	if id != (invocation.EventID{}) {
		zf = append(zf, zap.Object(EventKey, id))
	}
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	zf = append(zf, fields...)

	ce.Write(zf...)
}

func (l *Logger) Trace(msg string, fields ...zap.Field) {
	l.Log(invocation.Trace, invocation.EventID{}, msg, nil, fields...)
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.Log(invocation.Debug, invocation.EventID{}, msg, nil, fields...)
}

func (l *Logger) Information(msg string, fields ...zap.Field) {
	l.Log(invocation.Information, invocation.EventID{}, msg, nil, fields...)
}

func (l *Logger) Warning(msg string, fields ...zap.Field) {
	l.Log(invocation.Warning, invocation.EventID{}, msg, nil, fields...)
}

func (l *Logger) Error(msg string, err error, fields ...zap.Field) {
	l.Log(invocation.Error, invocation.EventID{}, msg, err, fields...)
}

func (l *Logger) Critical(msg string, err error, fields ...zap.Field) {
	l.Log(invocation.Critical, invocation.EventID{}, msg, err, fields...)
}

// With returns a child logger carrying fields. Scopes are shared with the parent.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{
		base:   l.base.With(fields...),
		enab:   l.enab,
		scopes: l.scopes,
	}
}

// Named returns a child logger whose invocations are recorded under name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{
		base:   l.base.Named(name),
		enab:   l.enab,
		scopes: l.scopes,
	}
}

// BeginScope starts a logical operation scope. The returned scope is also kept in
// Scopes, in call order.
func (l *Logger) BeginScope(state any) *Scope {
	s := &Scope{state: state}
	l.scopes.add(s)
	return s
}

// Scopes returns the scopes begun on this logger and its children.
func (l *Logger) Scopes() []*Scope {
	return l.scopes.all()
}

type scopes struct {
	mu   sync.Mutex
	list []*Scope
}

func (s *scopes) add(sc *Scope) {
	s.mu.Lock()
	s.list = append(s.list, sc)
	s.mu.Unlock()
}

func (s *scopes) all() []*Scope {
	s.mu.Lock()
	defer s.mu.Unlock()

	ret := make([]*Scope, len(s.list))
	copy(ret, s.list)
	return ret
}
