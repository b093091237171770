package query

import (
	"strings"

	"github.com/roadrunner-server/logquery/invocation"
)

// Matcher is a compiled Query: the conjunction of its four field criteria. It is
// immutable, later changes to the Query do not affect it.
type Matcher struct {
	level   fieldMatcher[invocation.Level]
	eventID fieldMatcher[invocation.EventID]
	message fieldMatcher[string]
	err     errorMatcher
}

// Compile snapshots the query. Unset fields match anything.
func (q *Query) Compile() *Matcher {
	m := &Matcher{
		level:   q.level,
		eventID: q.eventID,
		message: q.message,
		err:     q.err,
	}

	if m.level == nil {
		m.level = anyValue[invocation.Level]{typeName: levelType}
	}
	if m.eventID == nil {
		m.eventID = anyValue[invocation.EventID]{typeName: eventIDType}
	}
	if m.message == nil {
		m.message = anyValue[string]{typeName: messageType}
	}
	if m.err == nil {
		m.err = anyError{}
	}

	return m
}

// Match reports whether r satisfies every field criterion.
func (m *Matcher) Match(r invocation.Record) bool {
	return m.level.match(r.Level) &&
		m.eventID.match(r.EventID) &&
		m.message.match(r.Message) &&
		m.err.match(r.Err)
}

// String renders the call the matcher looks for, for example
// logger => logger.Log(Warning, It.IsAny[EventID](), "My message", nil).
func (m *Matcher) String() string {
	var sb strings.Builder
	sb.WriteString("logger => logger.Log(")
	sb.WriteString(m.level.render())
	sb.WriteString(", ")
	sb.WriteString(m.eventID.render())
	sb.WriteString(", ")
	sb.WriteString(m.message.render())
	sb.WriteString(", ")
	sb.WriteString(m.err.render())
	sb.WriteString(")")
	return sb.String()
}
