package runtime

import "testing"

// catchException runs fn and returns the exception it raised, nil when it
// completed normally. Non-exception panics propagate.
func catchException(fn func()) (exc *Exception) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(*Exception); ok {
				exc = e
				return
			}
			panic(p)
		}
	}()
	fn()
	return nil
}

func expectRaise(t *testing.T, class *Class, fn func()) *Exception {
	t.Helper()
	exc := catchException(fn)
	if exc == nil {
		t.Fatalf("expected %s to be raised, got normal completion", class.Name)
	}
	if !exc.Class.Is(class) {
		t.Fatalf("expected %s, got %s", class.Name, exc.Inspect())
	}
	return exc
}

// hostFn wraps a Go closure the way the evaluator wraps user functions.
func hostFn(name string, fn func(args []Object) Object) *HostFunction {
	return &HostFunction{Name: name, QualName: "test." + name, Fn: fn}
}

// incFn and showFn are tiny transforms shared across operator tests.
func incFn() *HostFunction {
	return hostFn("inc", func(args []Object) Object {
		return &Integer{Value: args[0].(*Integer).Value + 1}
	})
}

func doubleFn() *HostFunction {
	return hostFn("double", func(args []Object) Object {
		return &Integer{Value: args[0].(*Integer).Value * 2}
	})
}
