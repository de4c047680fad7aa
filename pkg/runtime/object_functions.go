package runtime

import (
	"fmt"
	"strings"
	"unsafe"
)

// Signature describes the parameter shape of a callable, for introspection
// and error messages only. Stored metadata, never reflected over.
type Signature struct {
	Params   []string
	Variadic bool
}

func (s *Signature) String() string {
	if s == nil {
		return "(...)"
	}
	params := s.Params
	if s.Variadic && len(params) > 0 {
		params = append(append([]string{}, params[:len(params)-1]...), params[len(params)-1]+"...")
	}
	return "(" + strings.Join(params, ", ") + ")"
}

// Builtin Function
type BuiltinFunction func(r *Runtime, args ...Object) Object

type Builtin struct {
	Fn   BuiltinFunction
	Name string
	Sig  *Signature
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function " + b.Name }
func (b *Builtin) Hash() uint32     { return hashString(b.Name) }

// HostFunction wraps a callable supplied by the evaluator (a user-defined
// function, a VM closure) so the runtime can invoke it without knowing its
// representation.
type HostFunction struct {
	Name     string
	QualName string
	Fn       func(args []Object) Object
	Sig      *Signature
}

func (h *HostFunction) Type() ObjectType { return HOST_FUNC_OBJ }
func (h *HostFunction) Inspect() string {
	if h.Name == "" {
		return "fn(...) { ... }"
	}
	return fmt.Sprintf("fn %s%s", h.Name, h.Sig.String())
}
func (h *HostFunction) Hash() uint32 {
	// Pointer identity; host closures have no stable name
	return uint32(uintptr(unsafe.Pointer(h)))
}

// ComposedFunction is the product of Compose: the function sequence applied
// right-to-left, plus metadata of its own. It holds references to the input
// callables, it does not copy them.
type ComposedFunction struct {
	Fns      []Object
	Name     string
	QualName string
	Sig      *Signature // borrowed from the last-listed callable
}

func (cf *ComposedFunction) Type() ObjectType { return COMPOSED_FUNC_OBJ }
func (cf *ComposedFunction) Inspect() string  { return "(composed function)" }
func (cf *ComposedFunction) Hash() uint32 {
	h := hashString(cf.Name)
	for _, fn := range cf.Fns {
		h = 31*h + fn.Hash()
	}
	return h
}

// isCallable reports whether obj is something ApplyFunction can invoke.
func isCallable(obj Object) bool {
	switch obj.(type) {
	case *Builtin, *HostFunction, *ComposedFunction, *Constructor:
		return true
	}
	return false
}

// NameOf returns the display name of a callable, "<anonymous>" when it has
// none.
func NameOf(fn Object) string {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Name
	case *HostFunction:
		if fn.Name != "" {
			return fn.Name
		}
	case *ComposedFunction:
		return fn.Name
	case *Constructor:
		return fn.Name
	}
	return "<anonymous>"
}

// QualNameOf returns the qualified name of a callable, falling back to the
// display name.
func QualNameOf(fn Object) string {
	switch fn := fn.(type) {
	case *HostFunction:
		if fn.QualName != "" {
			return fn.QualName
		}
	case *ComposedFunction:
		return fn.QualName
	}
	return NameOf(fn)
}

// SignatureOf returns the stored signature metadata of a callable, nil when
// it carries none.
func SignatureOf(fn Object) *Signature {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Sig
	case *HostFunction:
		return fn.Sig
	case *ComposedFunction:
		return fn.Sig
	}
	return nil
}
