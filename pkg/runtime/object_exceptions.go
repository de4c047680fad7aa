package runtime

import "fmt"

// Class identifies a failure class in the language's exception hierarchy.
// Classes are plain runtime values: the evaluator resolves the allow-list of
// a try expression to a set of them before calling the bridge.
type Class struct {
	Name   string
	Parent *Class
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return "class " + c.Name }
func (c *Class) Hash() uint32     { return hashString(c.Name) }

// Is reports whether c equals other or inherits from it.
func (c *Class) Is(other *Class) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// NewClass declares a failure class under parent. A nil parent attaches the
// class directly below the Exception root, so every user-defined class stays
// catchable by the default catch-all set.
func NewClass(name string, parent *Class) *Class {
	if parent == nil {
		parent = ExceptionClass
	}
	return &Class{Name: name, Parent: parent}
}

// Built-in hierarchy. LookupError sits between the root and the subscript
// failures so allow-list matching can be tested against a real parent chain.
var (
	ExceptionClass  = &Class{Name: "Exception"}
	TypeErrorClass  = &Class{Name: "TypeError", Parent: ExceptionClass}
	ValueErrorClass = &Class{Name: "ValueError", Parent: ExceptionClass}
	RuntimeErrClass = &Class{Name: "RuntimeError", Parent: ExceptionClass}
	LookupErrClass  = &Class{Name: "LookupError", Parent: ExceptionClass}
	KeyErrorClass   = &Class{Name: "KeyError", Parent: LookupErrClass}
	IndexErrorClass = &Class{Name: "IndexError", Parent: LookupErrClass}
)

// StackFrame for exception stack traces
type StackFrame struct {
	Name   string
	File   string
	Line   int
	Column int
}

// Exception is a raised failure. It leads a dual life: in flight it is a Go
// panic value (the host-native control-flow signal); once intercepted by the
// bridge it is an ordinary Err payload, inspectable and re-throwable.
type Exception struct {
	Class      *Class
	Message    string
	Payload    Object
	StackTrace []StackFrame
}

func (e *Exception) Type() ObjectType { return EXCEPTION_OBJ }
func (e *Exception) Inspect() string {
	return fmt.Sprintf("%s(%s)", e.Class.Name, e.Message)
}
func (e *Exception) Hash() uint32 {
	return hashString(e.Class.Name) ^ hashString(e.Message)
}

// NewException builds a failure object without raising it.
func NewException(class *Class, format string, a ...interface{}) *Exception {
	if class == nil {
		class = ExceptionClass
	}
	return &Exception{Class: class, Message: fmt.Sprintf(format, a...)}
}

// RaiseException raises exc as a native failure. It propagates until a try
// boundary with a matching allow-list converts it, or the host gives up.
func RaiseException(exc *Exception) {
	panic(exc)
}
