package query

import (
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// fieldMatcher is the single active criterion of one field.
type fieldMatcher[T any] interface {
	match(v T) bool
	render() string
}

type anyValue[T any] struct {
	typeName string
}

func (a anyValue[T]) match(T) bool { return true }

func (a anyValue[T]) render() string {
	return "It.IsAny[" + a.typeName + "]()"
}

type exactValue[T any] struct {
	value T
	equal func(a, b T) bool
	repr  string
}

func (e exactValue[T]) match(v T) bool { return e.equal(e.value, v) }
func (e exactValue[T]) render() string { return e.repr }

type predicate[T any] struct {
	typeName string
	fn       func(T) bool
}

func (p predicate[T]) match(v T) bool { return p.fn(v) }

func (p predicate[T]) render() string {
	return "It.Is[" + p.typeName + "](" + funcName(p.fn) + ")"
}

// pattern matches a message against a regular expression anchored at both ends.
type pattern struct {
	source string
	re     *regexp.Regexp
}

func (p pattern) match(v string) bool { return p.re.MatchString(v) }

func (p pattern) render() string {
	return "It.IsRegex(" + strconv.Quote(p.source) + ")"
}

func compileFullMatch(param, source string) pattern {
	re, err := regexp.Compile(`^(?:` + source + `)$`)
	if err != nil {
		panic(&ArgumentError{Pkg: pkgName, Kind: InvalidArgument, Param: param, Reason: "invalid regular expression", Err: err})
	}
	return pattern{source: source, re: re}
}

// funcName names fn by its symbol, trimmed to the last package path element.
// Closures come out as pkg.Outer.func1.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<predicate>"
	}

	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
