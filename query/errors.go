package query

import (
	"github.com/roadrunner-server/logquery/invocation"
)

// ArgumentError is the panic value of a setter or option given an unusable
// argument. recorder.Times constructors panic with the same type.
type ArgumentError = invocation.ArgumentError

// ErrorKind classifies an ArgumentError.
type ErrorKind = invocation.ErrorKind

const (
	InvalidArgument = invocation.InvalidArgument
	OutOfRange      = invocation.OutOfRange
)

const pkgName string = "query"
