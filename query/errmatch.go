package query

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
)

var errorInterface = reflect.TypeFor[error]()

// errorType narrows a record's error to a concrete or interface error type. The
// zero value is the error interface itself.
type errorType struct {
	rt reflect.Type
}

func (t errorType) isBase() bool {
	return t.rt == nil || t.rt == errorInterface
}

func (t errorType) String() string {
	if t.isBase() {
		return "error"
	}
	return t.rt.String()
}

// narrow follows errors.As: err, or an error in its chain, must be assignable to
// the type. The returned error is the narrowed value.
func (t errorType) narrow(err error) (error, bool) {
	if err == nil || isNil(reflect.ValueOf(err)) {
		return nil, false
	}

	if t.isBase() {
		return err, true
	}

	target := reflect.New(t.rt)
	if !errors.As(err, target.Interface()) || isNil(target.Elem()) {
		return nil, false
	}

	narrowed, ok := target.Elem().Interface().(error)
	return narrowed, ok
}

// isNil catches typed nil pointers hidden in a non-nil error interface.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

type errorMatcher interface {
	match(err error) bool
	render() string
}

type anyError struct{}

func (anyError) match(error) bool { return true }
func (anyError) render() string   { return "It.IsAny[error]()" }

type noError struct{}

func (noError) match(err error) bool { return err == nil }
func (noError) render() string       { return "nil" }

type errorOfType struct {
	typ errorType
}

func (e errorOfType) match(err error) bool {
	_, ok := e.typ.narrow(err)
	return ok
}

func (e errorOfType) render() string {
	return "It.IsNotNil[" + e.typ.String() + "]()"
}

type errorMessage struct {
	typ     errorType
	message string
}

func (e errorMessage) match(err error) bool {
	narrowed, ok := e.typ.narrow(err)
	return ok && narrowed.Error() == e.message
}

func (e errorMessage) render() string {
	return "It.Is[" + e.typ.String() + "](err => err != nil && err.Error() == " + strconv.Quote(e.message) + ")"
}

type errorPattern struct {
	typ    errorType
	source string
	re     *regexp.Regexp
}

func (e errorPattern) match(err error) bool {
	narrowed, ok := e.typ.narrow(err)
	return ok && e.re.MatchString(narrowed.Error())
}

func (e errorPattern) render() string {
	return "It.Is[" + e.typ.String() + "](err => err != nil && regexp.MatchString(" + strconv.Quote(e.source) + ", err.Error()))"
}

type errorPredicate struct {
	typ  errorType
	fn   func(error) bool
	name string
}

func (e errorPredicate) match(err error) bool {
	narrowed, ok := e.typ.narrow(err)
	if !ok || narrowed == nil {
		return false
	}
	return e.fn(narrowed)
}

func (e errorPredicate) render() string {
	return "It.Is[" + e.typ.String() + "](" + e.name + ")"
}

// ErrorOption narrows what WithError accepts.
type ErrorOption func(*errorCriteria)

type errorCriteria struct {
	typ     errorType
	message *string
	pattern *errorPattern

	// A predicate is bound to the type it was written for, so it keeps its own
	// type whatever other options set.
	predSet  bool
	predTyp  errorType
	pred     func(error) bool
	predName string
}

// resolve picks one matcher: predicate, then exact message, then pattern, then
// type alone.
func (c *errorCriteria) resolve() errorMatcher {
	switch {
	case c.predSet:
		if c.pred == nil {
			return anyError{}
		}
		return errorPredicate{typ: c.predTyp, fn: c.pred, name: c.predName}
	case c.message != nil:
		return errorMessage{typ: c.typ, message: *c.message}
	case c.pattern != nil:
		p := *c.pattern
		p.typ = c.typ
		return p
	default:
		return errorOfType{typ: c.typ}
	}
}

// ErrorType narrows the error to t. A nil t means the error interface. It panics
// with an OutOfRange ArgumentError when t does not implement error.
func ErrorType(t reflect.Type) ErrorOption {
	typ := mustErrorType("errorType", t)
	return func(c *errorCriteria) {
		c.typ = typ
	}
}

// ErrorOf narrows the error to T.
func ErrorOf[T error]() ErrorOption {
	return ErrorType(reflect.TypeFor[T]())
}

// ErrorMessage requires the narrowed error's message to equal message.
func ErrorMessage(message string) ErrorOption {
	return func(c *errorCriteria) {
		c.message = &message
	}
}

// ErrorMessageRegex requires the narrowed error's message to contain a match of
// pattern. It panics with an InvalidArgument ArgumentError when pattern does not
// compile.
func ErrorMessageRegex(pattern string) ErrorOption {
	re, err := regexp.Compile(pattern)
	if err != nil {
		panic(&ArgumentError{Pkg: pkgName, Kind: InvalidArgument, Param: "messageRegex", Reason: "invalid regular expression", Err: err})
	}

	p := &errorPattern{source: pattern, re: re}
	return func(c *errorCriteria) {
		c.pattern = p
	}
}

// ErrorWhere narrows the error to T and matches it with fn. fn is only called with
// a non-nil T. ErrorType and ErrorOf given in the same WithError call do not change
// T. A nil fn puts the error field back to matching any record.
func ErrorWhere[T error](fn func(T) bool) ErrorOption {
	typ := mustErrorType("T", reflect.TypeFor[T]())

	var pred func(error) bool
	if fn != nil {
		pred = func(err error) bool {
			t, ok := err.(T)
			return ok && fn(t)
		}
	}

	name := funcName(fn)
	return func(c *errorCriteria) {
		c.predTyp = typ
		c.predSet = true
		c.pred = pred
		c.predName = name
	}
}

func mustErrorType(param string, t reflect.Type) errorType {
	if t == nil {
		return errorType{}
	}

	if !t.Implements(errorInterface) {
		panic(&ArgumentError{Pkg: pkgName, Kind: OutOfRange, Param: param, Reason: t.String() + " must implement the error interface"})
	}

	return errorType{rt: t}
}
