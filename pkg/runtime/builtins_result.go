package runtime

// ResultBuiltins returns built-in functions for the Result type
func ResultBuiltins() map[string]*Builtin {
	return map[string]*Builtin{
		"isOk": {
			Fn:   builtinIsOk,
			Name: "isOk",
			Sig:  &Signature{Params: []string{"res"}},
		},
		"map": {
			Fn:   builtinMapResult,
			Name: "map",
			Sig:  &Signature{Params: []string{"res", "f"}},
		},
		"mapErr": {
			Fn:   builtinMapErr,
			Name: "mapErr",
			Sig:  &Signature{Params: []string{"res", "f"}},
		},
		"unwrapOr": {
			Fn:   builtinUnwrapOr,
			Name: "unwrapOr",
			Sig:  &Signature{Params: []string{"res", "default"}},
		},
	}
}

// ResultConstructors returns the Ok and Err constructors the evaluator
// binds as plain values, so `Ok` and `Err` stay first-class callables.
func ResultConstructors() map[string]*Constructor {
	return map[string]*Constructor{
		"Ok":  {Name: "Ok", TypeName: resultTypeName, Arity: 1},
		"Err": {Name: "Err", TypeName: resultTypeName, Arity: 1},
	}
}

// isOk: Result -> Bool
func builtinIsOk(r *Runtime, args ...Object) Object {
	if len(args) != 1 {
		return r.Raise(TypeErrorClass, "isOk expects 1 argument, got %d", len(args))
	}
	res := asResult(args[0])
	if res == nil {
		return r.Raise(TypeErrorClass, "isOk: expected Result, got %s", typeName(args[0]))
	}
	return nativeBoolToBooleanObject(res.isOk())
}

// map: (Result, T -> U) -> Result. Err passes through untouched; the
// function is never invoked on it.
func builtinMapResult(r *Runtime, args ...Object) Object {
	if len(args) != 2 {
		return r.Raise(TypeErrorClass, "map expects 2 arguments, got %d", len(args))
	}
	res := asResult(args[0])
	if res == nil {
		return r.Raise(TypeErrorClass, "map: expected Result, got %s", typeName(args[0]))
	}
	if !res.isOk() {
		return res
	}
	return Ok(r.ApplyFunction(args[1], []Object{res.Fields[0]}))
}

// mapErr: (Result, E -> E2) -> Result. Ok passes through untouched. A raise
// inside the function propagates natively; only a try boundary converts it.
func builtinMapErr(r *Runtime, args ...Object) Object {
	if len(args) != 2 {
		return r.Raise(TypeErrorClass, "mapErr expects 2 arguments, got %d", len(args))
	}
	res := asResult(args[0])
	if res == nil {
		return r.Raise(TypeErrorClass, "mapErr: expected Result, got %s", typeName(args[0]))
	}
	if res.isOk() {
		return res
	}
	return Err(r.ApplyFunction(args[1], []Object{res.Fields[0]}))
}

// unwrapOr: (Result, T) -> T. The default is supplied already evaluated.
func builtinUnwrapOr(r *Runtime, args ...Object) Object {
	if len(args) != 2 {
		return r.Raise(TypeErrorClass, "unwrapOr expects 2 arguments, got %d", len(args))
	}
	res := asResult(args[0])
	if res == nil {
		return r.Raise(TypeErrorClass, "unwrapOr: expected Result, got %s", typeName(args[0]))
	}
	if res.isOk() {
		return res.Fields[0]
	}
	return args[1]
}
