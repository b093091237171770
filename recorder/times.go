package recorder

import (
	"strconv"

	"github.com/roadrunner-server/logquery/invocation"
)

type timesKind uint8

const (
	unset timesKind = iota
	atLeast
	atMost
	between
	exactly
)

// Times is an expected-count constraint on the number of matching invocations.
// The zero value means at least once.
type Times struct {
	kind timesKind
	from int
	to   int
}

func AtLeastOnce() Times { return Times{kind: atLeast, from: 1} }
func AtMostOnce() Times  { return Times{kind: atMost, to: 1} }
func Once() Times        { return Times{kind: exactly, from: 1, to: 1} }
func Never() Times       { return Times{kind: exactly} }

// AtLeast panics with an *invocation.ArgumentError when n is negative.
func AtLeast(n int) Times {
	mustNotBeNegative("n", n)
	return Times{kind: atLeast, from: n}
}

// AtMost panics with an *invocation.ArgumentError when n is negative.
func AtMost(n int) Times {
	mustNotBeNegative("n", n)
	return Times{kind: atMost, to: n}
}

// Exactly panics with an *invocation.ArgumentError when n is negative.
func Exactly(n int) Times {
	mustNotBeNegative("n", n)
	return Times{kind: exactly, from: n, to: n}
}

// Between is inclusive on both ends. It panics with an *invocation.ArgumentError
// when the range is empty or negative.
func Between(from, to int) Times {
	mustNotBeNegative("from", from)
	if to < from {
		panic(&invocation.ArgumentError{
			Pkg:    pkgName,
			Kind:   invocation.OutOfRange,
			Param:  "to",
			Reason: strconv.Itoa(to) + " is below the lower bound " + strconv.Itoa(from),
		})
	}
	return Times{kind: between, from: from, to: to}
}

func (t Times) normalize() Times {
	if t.kind == unset {
		return AtLeastOnce()
	}
	return t
}

// Validate reports whether count satisfies the constraint.
func (t Times) Validate(count int) bool {
	t = t.normalize()

	switch t.kind {
	case atLeast:
		return count >= t.from
	case atMost:
		return count <= t.to
	case between, exactly:
		return count >= t.from && count <= t.to
	default:
		return false
	}
}

func (t Times) String() string {
	t = t.normalize()

	switch t.kind {
	case atLeast:
		if t.from == 1 {
			return "at least once"
		}
		return "at least " + plural(t.from)
	case atMost:
		if t.to == 1 {
			return "at most once"
		}
		return "at most " + plural(t.to)
	case between:
		return "between " + strconv.Itoa(t.from) + " and " + strconv.Itoa(t.to) + " times"
	case exactly:
		switch t.from {
		case 0:
			return "never"
		case 1:
			return "exactly once"
		default:
			return "exactly " + plural(t.from)
		}
	default:
		return "unknown"
	}
}

func plural(n int) string {
	if n == 1 {
		return "1 time"
	}
	return strconv.Itoa(n) + " times"
}

const pkgName string = "recorder"

func mustNotBeNegative(param string, n int) {
	if n < 0 {
		panic(&invocation.ArgumentError{
			Pkg:    pkgName,
			Kind:   invocation.OutOfRange,
			Param:  param,
			Reason: "negative call count " + strconv.Itoa(n),
		})
	}
}
