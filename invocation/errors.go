package invocation

// ErrorKind classifies an ArgumentError.
type ErrorKind uint8

const (
	// InvalidArgument is a malformed argument, such as a regular expression that
	// does not compile.
	InvalidArgument ErrorKind = iota + 1
	// OutOfRange is an argument outside the accepted set, such as a type that does
	// not implement error or a negative call count.
	OutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "argument out of range"
	default:
		return "argument error"
	}
}

// ArgumentError is the panic value of a constructor, setter or option given an
// unusable argument. It is raised while a query or count constraint is built,
// never during verification.
type ArgumentError struct {
	// Pkg names the package that rejected the argument.
	Pkg    string
	Kind   ErrorKind
	Param  string
	Reason string
	Err    error
}

func (e *ArgumentError) Error() string {
	msg := e.Kind.String() + " " + e.Param + ": " + e.Reason
	if e.Pkg != "" {
		msg = e.Pkg + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
