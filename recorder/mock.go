package recorder

import (
	"sync/atomic"

	"github.com/roadrunner-server/logquery/invocation"
	"github.com/stretchr/testify/mock"
)

const logMethod string = "Log"

// MockLogger is a recording Logger that can also forward calls to a testify mock.
// Forwarding starts with SetupLog, so a MockLogger without setups never panics on
// unexpected calls.
type MockLogger struct {
	mock.Mock
	*Logger

	rec   *Recorder
	setup atomic.Bool
}

// NewMockLogger returns a MockLogger that records every call whatever its level.
// min only decides what IsEnabled reports.
func NewMockLogger(min invocation.Level) *MockLogger {
	m := &MockLogger{
		rec: New(),
	}

	m.Logger = m.rec.Logger(invocation.Trace)
	m.enab = min
	m.rec.OnRecord(m.forward)

	return m
}

// SetupLog registers an expectation matching any log call. Use Run on the returned
// call to capture arguments: level, event id, message and error, in that order.
func (m *MockLogger) SetupLog() *mock.Call {
	m.setup.Store(true)
	return m.On(logMethod, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (m *MockLogger) forward(r invocation.Record) {
	if !m.setup.Load() {
		return
	}
	m.MethodCalled(logMethod, r.Level, r.EventID, r.Message, r.Err)
}

func (m *MockLogger) Recorder() *Recorder {
	return m.rec
}

func (m *MockLogger) Verify(matcher Matcher, times Times, failMessage string) error {
	return m.rec.Verify(matcher, times, failMessage)
}
