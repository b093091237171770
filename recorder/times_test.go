package recorder

import (
	"testing"

	"github.com/roadrunner-server/logquery/invocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimes_Validate(t *testing.T) {
	cases := []struct {
		name  string
		times Times
		ok    []int
		fail  []int
		str   string
	}{
		{"zero value", Times{}, []int{1, 5}, []int{0}, "at least once"},
		{"at least once", AtLeastOnce(), []int{1, 2}, []int{0}, "at least once"},
		{"at most once", AtMostOnce(), []int{0, 1}, []int{2}, "at most once"},
		{"once", Once(), []int{1}, []int{0, 2}, "exactly once"},
		{"never", Never(), []int{0}, []int{1}, "never"},
		{"exactly", Exactly(3), []int{3}, []int{2, 4}, "exactly 3 times"},
		{"at least", AtLeast(2), []int{2, 9}, []int{1}, "at least 2 times"},
		{"at most", AtMost(2), []int{0, 2}, []int{3}, "at most 2 times"},
		{"between", Between(1, 3), []int{1, 2, 3}, []int{0, 4}, "between 1 and 3 times"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, n := range c.ok {
				assert.True(t, c.times.Validate(n), "count %d", n)
			}
			for _, n := range c.fail {
				assert.False(t, c.times.Validate(n), "count %d", n)
			}
			assert.Equal(t, c.str, c.times.String())
		})
	}
}

func TestTimes_InvalidArguments(t *testing.T) {
	cases := []struct {
		name  string
		fn    func()
		param string
		msg   string
	}{
		{"exactly", func() { Exactly(-1) }, "n", "recorder: argument out of range n: negative call count -1"},
		{"at least", func() { AtLeast(-1) }, "n", "recorder: argument out of range n: negative call count -1"},
		{"at most", func() { AtMost(-2) }, "n", "recorder: argument out of range n: negative call count -2"},
		{"between negative", func() { Between(-1, 2) }, "from", "recorder: argument out of range from: negative call count -1"},
		{"between empty", func() { Between(3, 1) }, "to", "recorder: argument out of range to: 1 is below the lower bound 3"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			defer func() {
				aerr, ok := recover().(*invocation.ArgumentError)
				require.True(t, ok, "expected an *invocation.ArgumentError panic")
				assert.Equal(t, invocation.OutOfRange, aerr.Kind)
				assert.Equal(t, c.param, aerr.Param)
				assert.EqualError(t, aerr, c.msg)
			}()

			c.fn()
		})
	}
}
