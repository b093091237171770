package recorder

import (
	"strings"

	"github.com/roadrunner-server/logquery/invocation"
)

// VerificationError is returned when the number of matching invocations does not
// satisfy the expected Times.
type VerificationError struct {
	// FailMessage is the caller supplied message, may be empty.
	FailMessage string
	Expected    Times
	Actual      int
	// Expression is the rendered matcher.
	Expression string
	// Performed is the history the matcher was evaluated against.
	Performed []invocation.Record
}

func (e *VerificationError) Error() string {
	var sb strings.Builder

	if e.FailMessage != "" {
		sb.WriteString(e.FailMessage)
		sb.WriteByte('\n')
	}

	sb.WriteString("Expected invocation on the logger ")
	sb.WriteString(e.Expected.String())
	sb.WriteString(", but was ")
	sb.WriteString(plural(e.Actual))
	sb.WriteString(": ")
	sb.WriteString(e.Expression)
	sb.WriteString("\n\n")

	if len(e.Performed) == 0 {
		sb.WriteString("No invocations performed.")
		return sb.String()
	}

	sb.WriteString("Performed invocations:")
	for i := range e.Performed {
		sb.WriteString("\n   ")
		sb.WriteString(e.Performed[i].String())
	}

	return sb.String()
}
