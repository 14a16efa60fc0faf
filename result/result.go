/*
Package result provides a result type for computations that may fail.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is the outcome of a computation that may fail: either a value
// of type T, or an error.
type Result[T any] interface {
	Match() Matcher[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of adapts an idiomatic two-value Go return into a Result:
//
//	r := result.Of(sel.Class("draggable"))
//
// A non-nil err wins over v.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// AndThen chains a computation which itself may fail.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// --- Matching --------------------------------------------------------------

// Matcher allows switch-based pattern matching on a Result:
//
//	switch m := r.Match(); m {
//	case m.Ok(&v):
//	    …
//	case m.Err(&err):
//	    …
//	}
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
