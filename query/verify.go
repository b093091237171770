package query

import (
	"github.com/roadrunner-server/logquery/recorder"
	"github.com/stretchr/testify/require"
)

// Verifier owns a recorded history and counts the invocations a matcher selects.
// *recorder.Recorder, *recorder.View and *recorder.MockLogger implement it.
type Verifier interface {
	Verify(m recorder.Matcher, times recorder.Times, failMessage string) error
}

var (
	_ Verifier         = (*recorder.Recorder)(nil)
	_ Verifier         = (*recorder.View)(nil)
	_ Verifier         = (*recorder.MockLogger)(nil)
	_ recorder.Matcher = (*Matcher)(nil)
)

// Verify compiles q and checks the number of matching invocations in v against
// times. The zero Times means at least once. On mismatch the returned error is a
// *recorder.VerificationError carrying the rendered matcher.
func (q *Query) Verify(v Verifier, times recorder.Times, failMessage string) error {
	return v.Verify(q.Compile(), times, failMessage)
}

// VerifyLog builds a Query, lets configure set it up and verifies it against v,
// failing t on mismatch. A nil configure matches any call.
func VerifyLog(t require.TestingT, v Verifier, configure func(q *Query), times recorder.Times, failMessage string) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	q := New()
	if configure != nil {
		configure(q)
	}

	require.NoError(t, q.Verify(v, times, failMessage))
}
