package recorder

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/roadrunner-server/logquery/invocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// funcMatcher keeps these tests independent from the query package.
type funcMatcher struct {
	fn   func(invocation.Record) bool
	repr string
}

func (f funcMatcher) Match(r invocation.Record) bool { return f.fn(r) }
func (f funcMatcher) String() string                 { return f.repr }

var anyRecord = funcMatcher{
	fn:   func(invocation.Record) bool { return true },
	repr: "logger => logger.Log(any)",
}

func atLevel(l invocation.Level) funcMatcher {
	return funcMatcher{
		fn:   func(r invocation.Record) bool { return r.Level == l },
		repr: "logger => logger.Log(" + l.String() + ")",
	}
}

func TestRecorder_RecordsLoggerCalls(t *testing.T) {
	rec := New()
	l := rec.Logger(invocation.Trace)

	boom := errors.New("boom")
	l.Log(invocation.Information, invocation.EventID{ID: 123, Name: "Started"}, "x", nil)
	l.Error("failed", boom)
	l.Trace("tick")

	all := rec.All()
	require.Len(t, all, 3)

	assert.Equal(t, invocation.Information, all[0].Level)
	assert.Equal(t, invocation.EventID{ID: 123, Name: "Started"}, all[0].EventID)
	assert.Equal(t, "x", all[0].Message)
	assert.NoError(t, all[0].Err)

	assert.Equal(t, invocation.Error, all[1].Level)
	assert.Same(t, boom, all[1].Err)

	assert.Equal(t, invocation.Trace, all[2].Level)
	assert.False(t, all[2].Time.IsZero())
}

func TestRecorder_RespectsMinimumLevel(t *testing.T) {
	rec := New()
	l := rec.Logger(invocation.Warning)

	assert.False(t, l.IsEnabled(invocation.Information))
	assert.True(t, l.IsEnabled(invocation.Warning))
	assert.True(t, l.IsEnabled(invocation.Critical))

	l.Debug("dropped")
	l.Information("dropped")
	l.Warning("kept")
	l.Critical("kept", nil)

	assert.Equal(t, 2, rec.Len())
}

func TestRecorder_ReadsPlainZapFields(t *testing.T) {
	rec := New()
	zl := zap.New(rec.Core(invocation.Trace)).With(zap.Int(EventIDKey, 7)).Named("jobs")

	zl.Warn("retry", zap.String(EventNameKey, "Retry"), zap.Error(errors.New("timeout")))

	all := rec.All()
	require.Len(t, all, 1)
	assert.Equal(t, invocation.Warning, all[0].Level)
	assert.Equal(t, invocation.EventID{ID: 7, Name: "Retry"}, all[0].EventID)
	assert.EqualError(t, all[0].Err, "timeout")
	assert.Equal(t, "jobs", all[0].Logger)
}

func TestRecorder_Verify(t *testing.T) {
	rec := New()

	err := rec.Verify(anyRecord, Times{}, "")
	require.Error(t, err)

	var verr *VerificationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Actual)
	assert.Equal(t, "Expected invocation on the logger at least once, but was 0 times: logger => logger.Log(any)\n\nNo invocations performed.", err.Error())

	rec.Logger(invocation.Trace).Information("Hello, world!")

	require.NoError(t, rec.Verify(anyRecord, Times{}, ""))
	require.NoError(t, rec.Verify(atLevel(invocation.Information), Once(), ""))
	require.NoError(t, rec.Verify(atLevel(invocation.Error), Never(), ""))

	err = rec.Verify(atLevel(invocation.Error), AtLeastOnce(), "error expected")
	require.Error(t, err)
	assert.Equal(t, "error expected\nExpected invocation on the logger at least once, but was 0 times: logger => logger.Log(Error)\n\nPerformed invocations:\n   logger.Log(Information, 0, \"Hello, world!\", nil)", err.Error())
}

type nilReceiverError struct{ msg string }

func (e *nilReceiverError) Error() string { return e.msg }

func TestRecorder_VerificationErrorText(t *testing.T) {
	rec := New()
	l := rec.Logger(invocation.Trace)
	l.Information("Hello, world!")

	err := rec.Verify(anyRecord, Never(), "")
	require.Error(t, err)
	assert.Equal(t, "Expected invocation on the logger never, but was 1 time: logger => logger.Log(any)\n\n"+
		"Performed invocations:\n   logger.Log(Information, 0, \"Hello, world!\", nil)", err.Error())

	var typedNil *nilReceiverError
	l.Error("failed", typedNil)

	err = rec.Verify(atLevel(invocation.Warning), Once(), "")
	require.Error(t, err)
	assert.NotPanics(t, func() {
		assert.Contains(t, err.Error(), "but was 0 times")
		assert.Contains(t, err.Error(), `logger.Log(Error, 0, "failed", nil)`)
	})
}

func TestRecorder_VerifyIsRepeatable(t *testing.T) {
	rec := New()
	rec.Logger(invocation.Trace).Warning("w")

	first := rec.Verify(atLevel(invocation.Warning), Once(), "")
	second := rec.Verify(atLevel(invocation.Warning), Once(), "")
	assert.NoError(t, first)
	assert.NoError(t, second)
}

func TestRecorder_ConcurrentWriters(t *testing.T) {
	rec := New()
	l := rec.Logger(invocation.Trace)

	const writers, perWriter = 8, 100
	wg := &sync.WaitGroup{}
	for range writers {
		wg.Go(func() {
			for range perWriter {
				l.Information("tick")
			}
		})
	}

	wg.Wait()
	require.NoError(t, rec.Verify(anyRecord, Exactly(writers*perWriter), ""))
}

func TestRecorder_CategoryAndReset(t *testing.T) {
	rec := New()
	l := rec.Logger(invocation.Trace)

	l.Named("kafka").Information("from kafka")
	l.Named("amqp").Information("from amqp")
	l.Information("root")

	kafka := rec.Category("kafka")
	require.Len(t, kafka.All(), 1)
	assert.Equal(t, "from kafka", kafka.All()[0].Message)
	assert.Equal(t, 1, kafka.Count(anyRecord))
	require.NoError(t, kafka.Verify(anyRecord, Once(), ""))
	require.Error(t, rec.Category("sqs").Verify(anyRecord, Times{}, ""))

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	assert.Equal(t, 0, rec.Count(anyRecord))
}

func TestRecorder_OnRecord(t *testing.T) {
	rec := New()

	var seen []string
	rec.OnRecord(func(r invocation.Record) {
		seen = append(seen, r.Message)
	})

	l := rec.Logger(invocation.Trace)
	l.Information("a")
	l.Debug("b")

	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestRecorder_WriteJSON(t *testing.T) {
	rec := New()
	l := rec.Logger(invocation.Trace)
	l.Log(invocation.Warning, invocation.NewEventID(5), "first", nil)
	l.Error("second", errors.New("boom"))

	buf := &bytes.Buffer{}
	require.NoError(t, rec.WriteJSON(buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"Warning"`)
	assert.Contains(t, lines[0], `"event_id":5`)
	assert.Contains(t, lines[1], `"error":"boom"`)
}

func TestLogger_Scopes(t *testing.T) {
	l := New().Logger(invocation.Trace)

	s1 := l.BeginScope("request 1")
	s2 := l.Named("child").BeginScope(map[string]int{"id": 2})

	scopes := l.Scopes()
	require.Len(t, scopes, 2)
	assert.Same(t, s1, scopes[0])
	assert.Same(t, s2, scopes[1])
	assert.Equal(t, "request 1", s1.State())

	assert.False(t, s1.Closed())
	require.NoError(t, s1.Close())
	require.NoError(t, s1.Close())
	assert.True(t, s1.Closed())
	assert.Equal(t, 2, s1.CloseCount())
	assert.False(t, s2.Closed())
}
