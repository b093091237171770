package invocation

import (
	"strconv"
	"strings"

	"github.com/roadrunner-server/errors"
	"go.uber.org/zap/zapcore"
)

// Level is the severity of a logged call. Trace is the lowest severity.
type Level uint8

const (
	Trace Level = iota
	Debug
	Information
	Warning
	Error
	Critical
)

// zap has no trace or critical level, so trace sits one below debug and critical
// shares DPanic.
const (
	zapTraceLevel    = zapcore.DebugLevel - 1
	zapCriticalLevel = zapcore.DPanicLevel
)

var levelNames = [...]string{
	Trace:       "Trace",
	Debug:       "Debug",
	Information: "Information",
	Warning:     "Warning",
	Error:       "Error",
	Critical:    "Critical",
}

func (l Level) String() string {
	if !l.Valid() {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l <= Critical
}

// ZapLevel returns the zap level used when l is written through a zap logger.
func (l Level) ZapLevel() zapcore.Level {
	switch l {
	case Trace:
		return zapTraceLevel
	case Debug:
		return zapcore.DebugLevel
	case Information:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Critical:
		return zapCriticalLevel
	default:
		return zapcore.InvalidLevel
	}
}

// Enabled makes Level usable as the minimum level of a zap core.
func (l Level) Enabled(zl zapcore.Level) bool {
	return FromZapLevel(zl) >= l
}

// FromZapLevel maps a zap level back onto the invocation levels. Anything below
// debug is trace and anything above error is critical.
func FromZapLevel(zl zapcore.Level) Level {
	switch {
	case zl < zapcore.DebugLevel:
		return Trace
	case zl == zapcore.DebugLevel:
		return Debug
	case zl == zapcore.InfoLevel:
		return Information
	case zl == zapcore.WarnLevel:
		return Warning
	case zl == zapcore.ErrorLevel:
		return Error
	default:
		return Critical
	}
}

// ParseLevel parses a level name, case-insensitively. Short zap-style names
// (info, warn, crit, fatal) are accepted too.
func ParseLevel(s string) (Level, error) {
	const op = errors.Op("invocation_parse_level")

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "information", "info":
		return Information, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	case "critical", "crit", "fatal":
		return Critical, nil
	default:
		return Trace, errors.E(op, errors.Errorf("unknown log level: %q", s))
	}
}

// EncodeLevel is a zapcore.LevelEncoder that prints invocation level names.
func EncodeLevel(zl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(strings.ToUpper(FromZapLevel(zl).String()))
}
