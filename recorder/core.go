package recorder

import (
	"github.com/roadrunner-server/logquery/invocation"
	"go.uber.org/zap/zapcore"
)

// Field keys the recording core reads back from zap entries.
const (
	EventKey     string = "event"
	EventIDKey   string = "event_id"
	EventNameKey string = "event_name"
	ErrorKey     string = "error"
)

type core struct {
	zapcore.LevelEnabler
	rec     *Recorder
	context []zapcore.Field
}

// Core returns a zapcore.Core that records every entry it is handed.
func (r *Recorder) Core(enab zapcore.LevelEnabler) zapcore.Core {
	return &core{
		LevelEnabler: enab,
		rec:          r,
	}
}

func (c *core) Level() zapcore.Level {
	return zapcore.LevelOf(c.LevelEnabler)
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{
		LevelEnabler: c.LevelEnabler,
		rec:          c.rec,
		context:      append(c.context[:len(c.context):len(c.context)], fields...),
	}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rec := invocation.Record{
		Level:   invocation.FromZapLevel(ent.Level),
		Message: ent.Message,
		Logger:  ent.LoggerName,
		Time:    ent.Time,
	}

	// call site fields win over context fields
	decodeFields(&rec, c.context)
	decodeFields(&rec, fields)

	c.rec.add(rec)
	return nil
}

func (c *core) Sync() error {
	return nil
}

func decodeFields(rec *invocation.Record, fields []zapcore.Field) {
	for i := range fields {
		f := &fields[i]
		switch f.Key {
		case EventKey:
			if id, ok := f.Interface.(invocation.EventID); ok && f.Type == zapcore.ObjectMarshalerType {
				rec.EventID = id
			}
		case EventIDKey:
			if isInteger(f.Type) {
				rec.EventID.ID = int(f.Integer)
			}
		case EventNameKey:
			if f.Type == zapcore.StringType {
				rec.EventID.Name = f.String
			}
		case ErrorKey:
			if err, ok := f.Interface.(error); ok && f.Type == zapcore.ErrorType {
				rec.Err = err
			}
		}
	}
}

func isInteger(t zapcore.FieldType) bool {
	switch t {
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return true
	default:
		return false
	}
}
