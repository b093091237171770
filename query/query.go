package query

import (
	"strconv"

	"github.com/roadrunner-server/logquery/invocation"
)

// Query describes the log call to look for. Every setter replaces whatever was set
// before for its field, whichever setter that was, and returns the same Query.
// The zero value matches any call.
//
// A Query is meant to be built and verified on one goroutine.
type Query struct {
	level   fieldMatcher[invocation.Level]
	eventID fieldMatcher[invocation.EventID]
	message fieldMatcher[string]
	err     errorMatcher
}

func New() *Query {
	return &Query{}
}

func (q *Query) AtTrace() *Query       { return q.AtLevel(invocation.Trace) }
func (q *Query) AtDebug() *Query       { return q.AtLevel(invocation.Debug) }
func (q *Query) AtInformation() *Query { return q.AtLevel(invocation.Information) }
func (q *Query) AtWarning() *Query     { return q.AtLevel(invocation.Warning) }
func (q *Query) AtError() *Query       { return q.AtLevel(invocation.Error) }
func (q *Query) AtCritical() *Query    { return q.AtLevel(invocation.Critical) }

// AtLevel matches calls made at exactly level.
func (q *Query) AtLevel(level invocation.Level) *Query {
	q.level = exactValue[invocation.Level]{
		value: level,
		equal: func(a, b invocation.Level) bool { return a == b },
		repr:  level.String(),
	}
	return q
}

// AtAnyLevel clears the level criterion.
func (q *Query) AtAnyLevel() *Query {
	q.level = nil
	return q
}

// AtLevelMatching matches calls whose level satisfies fn. A nil fn clears the
// level criterion.
func (q *Query) AtLevelMatching(fn func(invocation.Level) bool) *Query {
	if fn == nil {
		return q.AtAnyLevel()
	}
	q.level = predicate[invocation.Level]{typeName: levelType, fn: fn}
	return q
}

// WithEventID matches calls whose event id equals id. Event names are ignored,
// use WithEventIDMatching to look at them.
func (q *Query) WithEventID(id int) *Query {
	q.eventID = exactValue[invocation.EventID]{
		value: invocation.NewEventID(id),
		equal: invocation.EventID.Equal,
		repr:  strconv.Itoa(id),
	}
	return q
}

// WithAnyEventID clears the event id criterion.
func (q *Query) WithAnyEventID() *Query {
	q.eventID = nil
	return q
}

// WithEventIDMatching matches calls whose event id satisfies fn. A nil fn clears
// the event id criterion.
func (q *Query) WithEventIDMatching(fn func(invocation.EventID) bool) *Query {
	if fn == nil {
		return q.WithAnyEventID()
	}
	q.eventID = predicate[invocation.EventID]{typeName: eventIDType, fn: fn}
	return q
}

// WithMessage matches calls whose formatted message equals message.
func (q *Query) WithMessage(message string) *Query {
	q.message = exactValue[string]{
		value: message,
		equal: func(a, b string) bool { return a == b },
		repr:  strconv.Quote(message),
	}
	return q
}

// WithAnyMessage clears the message criterion.
func (q *Query) WithAnyMessage() *Query {
	q.message = nil
	return q
}

// WithMessageRegex matches calls whose whole message matches pattern. It panics
// with an InvalidArgument ArgumentError when pattern does not compile.
func (q *Query) WithMessageRegex(pattern string) *Query {
	q.message = compileFullMatch("messageRegex", pattern)
	return q
}

// WithMessageMatching matches calls whose message satisfies fn. A nil fn clears
// the message criterion.
func (q *Query) WithMessageMatching(fn func(string) bool) *Query {
	if fn == nil {
		return q.WithAnyMessage()
	}
	q.message = predicate[string]{typeName: messageType, fn: fn}
	return q
}

// WithoutError matches calls made without an error.
func (q *Query) WithoutError() *Query {
	q.err = noError{}
	return q
}

// WithError matches calls made with an error. Without options any non-nil error
// matches. Options are applied in order; the resulting criterion is the predicate
// if one was given, else the exact message, else the message pattern, else the
// type alone.
func (q *Query) WithError(opts ...ErrorOption) *Query {
	c := &errorCriteria{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	q.err = c.resolve()
	return q
}

// WithErrorMessage matches calls made with an error whose message equals message.
func (q *Query) WithErrorMessage(message string) *Query {
	return q.WithError(ErrorMessage(message))
}

// WithErrorMatching matches calls made with an error satisfying fn. A nil fn
// clears the error criterion.
func (q *Query) WithErrorMatching(fn func(error) bool) *Query {
	return q.WithError(ErrorWhere(fn))
}

// Names used when rendering wildcards and predicates.
const (
	levelType   string = "Level"
	eventIDType string = "EventID"
	messageType string = "string"
)
