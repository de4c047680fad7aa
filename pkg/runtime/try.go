package runtime

// TryExcept evaluates thunk under the exception bridge. The evaluator lowers
// `try <expr> except C1, C2` into a call with the resolved classes.
//
// Normal completion yields Ok(value). A failure whose class matches the
// allow-list yields Err(exception) with the original exception object
// untouched. Everything else (a failure outside the declared catch set, a
// do-notation signal, a host panic) propagates natively: the bridge narrows
// exactly the declared failure surface, nothing more.
//
// A nil allow-list means the try had no except clause; the default catch set
// is then every Exception-class failure (Runtime.CatchAll). A non-nil empty
// allow-list means an explicit empty except list and catches nothing.
func (r *Runtime) TryExcept(thunk func() Object, classes []*Class) (result Object) {
	defer func() {
		if p := recover(); p != nil {
			exc, ok := p.(*Exception)
			if !ok {
				panic(p)
			}
			if !r.catches(exc, classes) {
				r.Logger.Warnf("try: passing through %s", exc.Inspect())
				panic(p)
			}
			r.Logger.Debugf("try: caught %s", exc.Inspect())
			result = Err(exc)
		}
	}()
	return Ok(thunk())
}

// Try is the variadic convenience over TryExcept. No classes means no except
// clause, i.e. the default catch set.
func (r *Runtime) Try(thunk func() Object, classes ...*Class) Object {
	if len(classes) == 0 {
		return r.TryExcept(thunk, nil)
	}
	return r.TryExcept(thunk, classes)
}

func (r *Runtime) catches(exc *Exception, classes []*Class) bool {
	if classes == nil {
		return r.CatchAll && exc.Class.Is(ExceptionClass)
	}
	for _, class := range classes {
		if exc.Class.Is(class) {
			return true
		}
	}
	return false
}
