package runtime

// composedName is the synthetic label every composition product carries as
// both display and qualified name.
const composedName = "<composed>"

// Compose builds one callable from a sequence of callables applied right to
// left: Compose(f, g, h)(x...) = f(g(h(x...))). The last-listed callable
// receives the original arguments, so the composed signature metadata is
// borrowed from it. A single callable is returned as-is, original metadata
// and all.
func (r *Runtime) Compose(fns ...Object) Object {
	if len(fns) == 0 {
		return r.Raise(TypeErrorClass, "compose: at least one function required")
	}
	for _, fn := range fns {
		if !isCallable(fn) {
			return r.Raise(TypeErrorClass, "compose: at least one function required, got %s", typeName(fn))
		}
	}
	if len(fns) == 1 {
		return fns[0]
	}
	sequence := make([]Object, len(fns))
	copy(sequence, fns)
	return &ComposedFunction{
		Fns:      sequence,
		Name:     composedName,
		QualName: composedName,
		Sig:      SignatureOf(sequence[len(sequence)-1]),
	}
}
