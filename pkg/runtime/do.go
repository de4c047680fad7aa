package runtime

import "github.com/google/uuid"

// doSignal is the non-local exit of an unwrap marker: a single-level signal
// recovered only by the Do frame whose token it carries.
type doSignal struct {
	token uuid.UUID
	err   Object
}

// Bind is the handle a do-notation block unwraps through. The evaluator
// lowers each `@(expr)` inside a `| do()` block to b.Unwrap(expr).
type Bind struct {
	rt    *Runtime
	token uuid.UUID
}

// Unwrap yields the contained value of an Ok and terminates the nearest
// enclosing do block with the Err otherwise. Applying it to a non-Result is
// a programming error in the block and raises TypeError at once.
func (b *Bind) Unwrap(obj Object) Object {
	res := asResult(obj)
	if res == nil {
		return b.rt.Raise(TypeErrorClass, "@() expects a Result, got %s", typeName(obj))
	}
	if res.isOk() {
		return res.Fields[0]
	}
	b.rt.Logger.Debugf("do: short-circuit on %s", res.Inspect())
	panic(doSignal{token: b.token, err: res})
}

// Do runs a block under do-notation: the first Err unwrapped inside it
// becomes the block's result and the rest of the block does not execute;
// a block that runs to completion yields Ok(finalValue). The block always
// evaluates to a Result, never a bare value.
//
// Each call carries its own token, so nested blocks recover only their own
// signals and the binder stays re-entrant under concurrent evaluation.
func (r *Runtime) Do(block func(b *Bind) Object) (result Object) {
	bind := &Bind{rt: r, token: uuid.New()}
	defer func() {
		if p := recover(); p != nil {
			signal, ok := p.(doSignal)
			if !ok || signal.token != bind.token {
				panic(p)
			}
			result = signal.err
		}
	}()
	return Ok(block(bind))
}

// Awaiter is the single primitive the binder needs from the asynchronous
// execution module: run a block to completion or suspension point and return
// its eventual Result. The runtime treats it as an opaque dependency.
type Awaiter interface {
	Await(block func() Object) Object
}

// DoAsync runs a do-notation block through the asynchronous collaborator.
// The binder itself introduces no suspension point; an Err is data, not a
// cancellation signal.
func (r *Runtime) DoAsync(aw Awaiter, block func(b *Bind) Object) Object {
	return aw.Await(func() Object {
		return r.Do(block)
	})
}
