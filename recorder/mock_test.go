package recorder

import (
	"errors"
	"testing"

	"github.com/roadrunner-server/logquery/invocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_SetupLog(t *testing.T) {
	m := NewMockLogger(invocation.Trace)

	var (
		capturedLevel   invocation.Level
		capturedEventID invocation.EventID
		capturedMessage string
		capturedErr     error
	)

	m.SetupLog().Run(func(args mock.Arguments) {
		capturedLevel = args.Get(0).(invocation.Level)
		capturedEventID = args.Get(1).(invocation.EventID)
		capturedMessage = args.String(2)
		capturedErr = args.Error(3)
	})

	expectedErr := errors.New("expected")
	m.Log(invocation.Information, invocation.NewEventID(123), "Hello, world!", expectedErr)

	assert.Equal(t, invocation.Information, capturedLevel)
	assert.Equal(t, invocation.NewEventID(123), capturedEventID)
	assert.Equal(t, "Hello, world!", capturedMessage)
	assert.Same(t, expectedErr, capturedErr)

	m.AssertNumberOfCalls(t, logMethod, 1)
}

func TestMockLogger_WithoutSetup(t *testing.T) {
	m := NewMockLogger(invocation.Trace)

	assert.NotPanics(t, func() {
		m.Information("Hello, world!")
	})

	assert.Equal(t, 1, m.Recorder().Len())
	require.NoError(t, m.Verify(anyRecord, Once(), ""))
	m.AssertNotCalled(t, logMethod, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMockLogger_MinimumLevelOnlyDrivesIsEnabled(t *testing.T) {
	m := NewMockLogger(invocation.Warning)

	assert.False(t, m.IsEnabled(invocation.Debug))
	assert.False(t, m.IsEnabled(invocation.Information))
	assert.True(t, m.IsEnabled(invocation.Warning))
	assert.True(t, m.Named("child").IsEnabled(invocation.Critical))
	assert.False(t, m.With().IsEnabled(invocation.Trace))

	m.Debug("debug call")
	m.Information("information call")
	m.Warning("warning call")

	assert.Equal(t, 3, m.Recorder().Len())
	require.NoError(t, m.Verify(atLevel(invocation.Debug), Once(), ""))
	require.NoError(t, m.Verify(atLevel(invocation.Information), Once(), ""))
	require.NoError(t, m.Verify(atLevel(invocation.Warning), Once(), ""))
}
