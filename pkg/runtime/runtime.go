// Package runtime implements the error-handling core of the tl language:
// the Result sum type, the exception bridge behind try expressions, the
// apply/pipe/coalesce operators, the do-notation binder and the function
// composition helper. The parser and the expression evaluator are external;
// they drive this package through its exported API and the builtin registry.
package runtime

import "github.com/apex/log"

// CallFrame represents a single frame in the call stack
type CallFrame struct {
	Name   string // Function name
	File   string // Source file
	Line   int    // Line number
	Column int    // Column number
}

// Logger is the subset of a structured logger the runtime traces with. It is
// out of the box compatible with log.Log in apex/log.
type Logger interface {
	Debugf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
}

type Runtime struct {
	Logger Logger

	// CatchAll governs a try expression with no except clause: when true
	// (the default) it intercepts every Exception-class failure. The
	// embedding evaluator may flip this to make a bare try catch nothing.
	CatchAll bool

	// CallStack for stack traces on raised failures. The evaluator pushes a
	// frame around each call it lowers into the runtime.
	CallStack []CallFrame
}

func New() *Runtime {
	return &Runtime{
		Logger:   log.Log,
		CatchAll: true,
	}
}

// PushCall adds a call frame to the stack
func (r *Runtime) PushCall(name string, file string, line, column int) {
	r.CallStack = append(r.CallStack, CallFrame{
		Name:   name,
		File:   file,
		Line:   line,
		Column: column,
	})
}

// PopCall removes the top call frame
func (r *Runtime) PopCall() {
	if len(r.CallStack) > 0 {
		r.CallStack = r.CallStack[:len(r.CallStack)-1]
	}
}

// Raise builds an exception carrying the current stack trace and raises it.
// It never returns; the Object return type lets builtins end with
// `return r.Raise(...)`.
func (r *Runtime) Raise(class *Class, format string, a ...interface{}) Object {
	exc := NewException(class, format, a...)
	if len(r.CallStack) > 0 {
		exc.StackTrace = make([]StackFrame, len(r.CallStack))
		for i, frame := range r.CallStack {
			exc.StackTrace[i] = StackFrame{
				Name:   frame.Name,
				File:   frame.File,
				Line:   frame.Line,
				Column: frame.Column,
			}
		}
	}
	RaiseException(exc)
	return nil
}
