package runtime

// ApplyFunction applies a callable to arguments (exported for the evaluator).
func (r *Runtime) ApplyFunction(fn Object, args []Object) Object {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Fn(r, args...)

	case *HostFunction:
		return fn.Fn(args)

	case *Constructor:
		if len(args) != fn.Arity {
			return r.Raise(TypeErrorClass, "%s expects %d arguments, got %d", fn.Name, fn.Arity, len(args))
		}
		fields := make([]Object, len(args))
		copy(fields, args)
		return &DataInstance{Name: fn.Name, TypeName: fn.TypeName, Fields: fields}

	case *ComposedFunction:
		// The last-listed callable receives the original arguments; each
		// preceding one is applied to the prior result, right to left.
		last := len(fn.Fns) - 1
		result := r.ApplyFunction(fn.Fns[last], args)
		for i := last - 1; i >= 0; i-- {
			result = r.ApplyFunction(fn.Fns[i], []Object{result})
		}
		return result

	default:
		return r.Raise(TypeErrorClass, "not a function: %s", typeName(fn))
	}
}
