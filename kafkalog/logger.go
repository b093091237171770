package kafkalog

import (
	"fmt"

	"github.com/roadrunner-server/logquery/invocation"
	"github.com/roadrunner-server/logquery/recorder"
	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errKey is the key franz-go uses for errors in its key/value pairs.
const errKey string = "err"

type logger struct {
	l *recorder.Logger
}

var _ kgo.Logger = (*logger)(nil)

// New returns a kgo.Logger that records the client's logs through l. An error
// passed under the "err" key becomes the invocation's error.
func New(l *recorder.Logger) kgo.Logger {
	return &logger{
		l,
	}
}

func (l *logger) Level() kgo.LogLevel {
	switch {
	case l.l.IsEnabled(invocation.Debug):
		return kgo.LogLevelDebug
	case l.l.IsEnabled(invocation.Information):
		return kgo.LogLevelInfo
	case l.l.IsEnabled(invocation.Warning):
		return kgo.LogLevelWarn
	case l.l.IsEnabled(invocation.Error):
		return kgo.LogLevelError
	default:
		return kgo.LogLevelNone
	}
}

func (l *logger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	zf, err := toKeyValuePair(keyvals)

	switch level {
	case kgo.LogLevelDebug, kgo.LogLevelNone:
		l.l.Log(invocation.Debug, invocation.EventID{}, msg, err, zf...)
	case kgo.LogLevelInfo:
		l.l.Log(invocation.Information, invocation.EventID{}, msg, err, zf...)
	case kgo.LogLevelWarn:
		l.l.Log(invocation.Warning, invocation.EventID{}, msg, err, zf...)
	case kgo.LogLevelError:
		l.l.Log(invocation.Error, invocation.EventID{}, msg, err, zf...)
	default:
		l.l.Log(invocation.Debug, invocation.EventID{}, msg, err, zf...)
	}
}

// toKeyValuePair converts kgo key/value pairs to zap fields. The error returned
// is the value of the err key, not a conversion failure.
func toKeyValuePair(keyvals []any) ([]zapcore.Field, error) {
	inLen := len(keyvals)
	if inLen == 0 {
		return nil, nil
	}

	if inLen%2 == 0 {
		// every even element must be a string key
		isKVP := true
		keys := make([]string, 0, inLen/2)
		for i := 0; i < inLen; i += 2 {
			if key, ok := keyvals[i].(string); ok {
				keys = append(keys, key)
			} else {
				isKVP = false
				break
			}
		}

		if isKVP {
			var err error
			result := make([]zap.Field, 0, inLen/2)
			for i, key := range keys {
				val := keyvals[i*2+1]
				if e, ok := val.(error); ok && key == errKey && err == nil {
					err = e
					continue
				}
				result = append(result, zap.Any(key, val))
			}
			return result, err
		}
	}

	// malformed pairs are kept positionally
	result := make([]zap.Field, inLen)
	for i, val := range keyvals {
		result[i] = zap.Any(fmt.Sprintf("val%d", i), val)
	}
	return result, nil
}
