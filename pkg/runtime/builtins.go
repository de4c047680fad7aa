package runtime

// Builtins returns the full operation registry the evaluator installs into
// the language environment.
func Builtins() map[string]*Builtin {
	builtins := make(map[string]*Builtin)
	for name, builtin := range ResultBuiltins() {
		builtins[name] = builtin
	}
	for name, builtin := range CoreBuiltins() {
		builtins[name] = builtin
	}
	return builtins
}

// CoreBuiltins returns built-in functions that are not tied to a type
func CoreBuiltins() map[string]*Builtin {
	return map[string]*Builtin{
		"raise": {
			Fn:   builtinRaise,
			Name: "raise",
			Sig:  &Signature{Params: []string{"class", "message"}},
		},
		"compose": {
			Fn:   builtinCompose,
			Name: "compose",
			Sig:  &Signature{Params: []string{"fns"}, Variadic: true},
		},
	}
}

// raise: (Class, String?) -> never
func builtinRaise(r *Runtime, args ...Object) Object {
	if len(args) < 1 || len(args) > 2 {
		return r.Raise(TypeErrorClass, "raise expects 1 or 2 arguments, got %d", len(args))
	}
	class, ok := args[0].(*Class)
	if !ok {
		return r.Raise(TypeErrorClass, "raise: expected a class, got %s", typeName(args[0]))
	}
	message := ""
	if len(args) == 2 {
		if s, ok := args[1].(*String); ok {
			message = s.Value
		} else {
			message = args[1].Inspect()
		}
	}
	return r.Raise(class, "%s", message)
}

// compose: (fns...) -> Function
func builtinCompose(r *Runtime, args ...Object) Object {
	return r.Compose(args...)
}
