package caller

import (
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// UnknownModule is the module name reported for frames that cannot be
// resolved.
const UnknownModule = "<unknown>"

// Caller is the identity of a call site.
type Caller struct {
	// Module is the import path of the package containing the call site.
	Module string
	// Function is the function name relative to Module, e.g. "Run",
	// "(*Server).Serve" or "main.func1".
	Function string
	File     string
	Line     int
}

// String renders c as "module:function:L<line>".
func (c Caller) String() string {
	return c.Module + ":" + c.Function + ":L" + strconv.Itoa(c.Line)
}

// Identify returns the call site extraSkip frames above the caller of the
// function that calls Identify.
func Identify(extraSkip int) Caller {
	pc, file, line, ok := runtime.Caller(2 + extraSkip)
	if !ok {
		return Caller{Module: UnknownModule, Function: UnknownModule}
	}

	c := Caller{File: file, Line: line, Module: UnknownModule, Function: UnknownModule}

	fn := runtime.FuncForPC(pc)
	if fn != nil {
		c.Module, c.Function = Split(fn.Name())
	}

	return c
}

// FuncName returns the name of the function value fn relative to its
// package, or "" when fn is not a function.
func FuncName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	_, name := Split(f.Name())

	return strings.TrimSuffix(name, "-fm")
}

// Split splits a fully qualified function name such as
// "example.com/pkg/sub.(*T).Method" into its package path and the function
// name within that package. Names without a package yield [UnknownModule].
// Dots escaped by the linker in the last path element ("%2e") are restored.
func Split(qualified string) (string, string) {
	slash := strings.LastIndexByte(qualified, '/')

	dot := strings.IndexByte(qualified[slash+1:], '.')
	if dot < 0 {
		return UnknownModule, qualified
	}

	dot += slash + 1

	return strings.ReplaceAll(qualified[:dot], "%2e", "."), qualified[dot+1:]
}
