package runtime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResultInspect(t *testing.T) {
	tests := []struct {
		input    Object
		expected string
	}{
		{Ok(&Integer{Value: 1}), "Ok(1)"},
		{Ok(&String{Value: "hi"}), `Ok("hi")`},
		{Err(&String{Value: "boom"}), `Err("boom")`},
		{Err(NewException(KeyErrorClass, "missing")), "Err(KeyError(missing))"},
		{Ok(NIL), "Ok(Nil)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.input.Inspect(); got != tt.expected {
				t.Errorf("Inspect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsResult(t *testing.T) {
	tests := []struct {
		name     string
		input    Object
		expected bool
	}{
		{"ok", Ok(&Integer{Value: 1}), true},
		{"err", Err(&String{Value: "e"}), true},
		{"bare integer", &Integer{Value: 1}, false},
		{"nil value", NIL, false},
		{"foreign data instance", &DataInstance{Name: "Some", TypeName: "Option", Fields: []Object{TRUE}}, false},
		{"malformed result", &DataInstance{Name: "Ok", TypeName: "Result"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsResult(tt.input); got != tt.expected {
				t.Errorf("IsResult() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResultImmutability(t *testing.T) {
	r := New()
	err := Err(&String{Value: "boom"})
	mapped := r.ApplyFunction(ResultBuiltins()["map"], []Object{err, incFn()})

	if diff := cmp.Diff(Err(&String{Value: "boom"}), mapped); diff != "" {
		t.Errorf("map changed an Err (-want +got):\n%s", diff)
	}
}

func TestClassIs(t *testing.T) {
	custom := NewClass("ParseError", ValueErrorClass)
	tests := []struct {
		name     string
		class    *Class
		target   *Class
		expected bool
	}{
		{"class is itself", KeyErrorClass, KeyErrorClass, true},
		{"key error is lookup error", KeyErrorClass, LookupErrClass, true},
		{"key error is exception", KeyErrorClass, ExceptionClass, true},
		{"key error is not type error", KeyErrorClass, TypeErrorClass, false},
		{"parent is not child", LookupErrClass, KeyErrorClass, false},
		{"user class under value error", custom, ValueErrorClass, true},
		{"user class under root", custom, ExceptionClass, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.class.Is(tt.target); got != tt.expected {
				t.Errorf("%s.Is(%s) = %v, want %v", tt.class.Name, tt.target.Name, got, tt.expected)
			}
		})
	}
}

func TestNewClassDefaultsToExceptionRoot(t *testing.T) {
	c := NewClass("AppError", nil)
	if !c.Is(ExceptionClass) {
		t.Errorf("class with nil parent should sit under Exception")
	}
}

func TestRaiseCapturesCallStack(t *testing.T) {
	r := New()
	r.PushCall("lookup", "main.tl", 3, 7)
	defer r.PopCall()

	exc := catchException(func() {
		r.Raise(ValueErrorClass, "bad value %d", 42)
	})
	if exc == nil {
		t.Fatalf("expected a raised exception")
	}
	if exc.Message != "bad value 42" {
		t.Errorf("message = %q", exc.Message)
	}
	want := []StackFrame{{Name: "lookup", File: "main.tl", Line: 3, Column: 7}}
	if diff := cmp.Diff(want, exc.StackTrace); diff != "" {
		t.Errorf("stack trace mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectsEqual(t *testing.T) {
	inc := incFn()
	tests := []struct {
		name     string
		a, b     Object
		expected bool
	}{
		{"equal integers", &Integer{Value: 3}, &Integer{Value: 3}, true},
		{"distinct integers", &Integer{Value: 3}, &Integer{Value: 4}, false},
		{"equal strings", &String{Value: "x"}, &String{Value: "x"}, true},
		{"nil values", NIL, &Nil{}, true},
		{"zero int is not false", &Integer{Value: 0}, FALSE, false},
		{"zero int is not nil", &Integer{Value: 0}, NIL, false},
		{"equal results", Ok(&Integer{Value: 1}), Ok(&Integer{Value: 1}), true},
		{"ok is not err", Ok(&Integer{Value: 1}), Err(&Integer{Value: 1}), false},
		{"same callable", inc, inc, true},
		{"distinct callables", incFn(), incFn(), false},
		{"same class", KeyErrorClass, KeyErrorClass, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ObjectsEqual(tt.a, tt.b); got != tt.expected {
				t.Errorf("ObjectsEqual(%s, %s) = %v, want %v", tt.a.Inspect(), tt.b.Inspect(), got, tt.expected)
			}
		})
	}
}

func TestDictCollidingKeys(t *testing.T) {
	// Integer 0, false and Nil all hash to 0 (true and Integer 1 to 1); the
	// dict must separate them by real key equality, not by hash alone.
	d := NewDict()
	d.Set(&Integer{Value: 0}, &String{Value: "zero"})

	if _, ok := d.Get(NIL); ok {
		t.Errorf("Get(Nil) found a value through the Integer 0 entry")
	}
	expectRaise(t, KeyErrorClass, func() {
		d.Index(FALSE)
	})

	d.Set(FALSE, &String{Value: "no"})
	d.Set(TRUE, &String{Value: "yes"})
	d.Set(&Integer{Value: 1}, &String{Value: "one"})

	if d.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 distinct entries", d.Len())
	}
	tests := []struct {
		key      Object
		expected string
	}{
		{&Integer{Value: 0}, `"zero"`},
		{FALSE, `"no"`},
		{TRUE, `"yes"`},
		{&Integer{Value: 1}, `"one"`},
	}
	for _, tt := range tests {
		if got := d.Index(tt.key); got.Inspect() != tt.expected {
			t.Errorf("Index(%s) = %s, want %s", tt.key.Inspect(), got.Inspect(), tt.expected)
		}
	}

	// Overwriting one colliding key leaves its bucket mates alone.
	d.Set(FALSE, &String{Value: "still no"})
	if got := d.Index(&Integer{Value: 0}); got.Inspect() != `"zero"` {
		t.Errorf("overwriting false clobbered the Integer 0 entry: got %s", got.Inspect())
	}
	if got := d.Index(FALSE); got.Inspect() != `"still no"` {
		t.Errorf("Index(false) = %s after overwrite", got.Inspect())
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d after overwrite, want 4", d.Len())
	}
}

func TestDictIndex(t *testing.T) {
	d := NewDict()
	d.Set(&String{Value: "user"}, &Integer{Value: 1})

	if got := d.Index(&String{Value: "user"}); got.Inspect() != "1" {
		t.Errorf("Index() = %s, want 1", got.Inspect())
	}

	exc := expectRaise(t, KeyErrorClass, func() {
		d.Index(&String{Value: "missing"})
	})
	if exc.Message != `"missing"` {
		t.Errorf("KeyError message = %q", exc.Message)
	}
}
