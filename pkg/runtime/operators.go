package runtime

// Apply evaluates `x.(f)`: plain postfix invocation, no Result-specific
// behavior.
func (r *Runtime) Apply(x, f Object) Object {
	return r.ApplyFunction(f, []Object{x})
}

// Pipe evaluates `x | f | g ...` left to right: Pipe(x, f, g) = g(f(x)).
// Unlike Compose this is an eager chain over a value, not a new callable.
func (r *Runtime) Pipe(x Object, fns ...Object) Object {
	result := x
	for _, fn := range fns {
		result = r.ApplyFunction(fn, []Object{result})
	}
	return result
}

// Coalesce evaluates `x ?? def`: the unwrapped value when x is Ok, def when
// x is Err or Nil. Any other left operand has no absent interpretation and
// raises TypeError rather than silently passing through.
func (r *Runtime) Coalesce(x, def Object) Object {
	if res := asResult(x); res != nil {
		if res.isOk() {
			return res.Fields[0]
		}
		return def
	}
	if _, ok := x.(*Nil); ok {
		return def
	}
	return r.Raise(TypeErrorClass, "?? is not defined for %s", typeName(x))
}
