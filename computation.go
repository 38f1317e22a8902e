package looplet

// Unit is the payload type of computations that complete without
// producing a value.
type Unit struct{}

// A Result is the outcome of polling a [Computation] once: the
// computation is either still suspended, or it has completed with a value.
//
// A Result can be created by calling one of the following functions:
//   - [Suspended]: for reporting that a computation must be polled again;
//   - [Completed]: for reporting a final value.
type Result[T any] struct {
	value T
	done  bool
}

// Suspended returns a [Result] reporting that a computation has not
// completed yet. The computation keeps its internal state and expects to
// be polled again later.
func Suspended[T any]() Result[T] {
	return Result[T]{}
}

// Completed returns a [Result] reporting that a computation has completed
// with the value v.
func Completed[T any](v T) Result[T] {
	return Result[T]{value: v, done: true}
}

// Done reports whether r carries a completion.
func (r Result[T]) Done() bool {
	return r.done
}

// Value returns the completion value of r.
// For a suspended Result, Value returns the zero value.
func (r Result[T]) Value() T {
	return r.value
}

// A Computation is a resumable unit of work.
//
// Poll advances the computation by exactly one step and reports, via
// a [Result], whether it is still suspended or has completed with a value.
// All suspend/resume state lives inside the computation itself; the only
// obligation of the caller is to poll the same value again later, without
// copying or relocating it in between.
//
// A Computation that has reported completion must not be polled again,
// unless its documentation says otherwise. An [Executor] never does.
type Computation[T any] interface {
	Poll() Result[T]
}

// Func adapts an ordinary function to a [Computation].
type Func[T any] func() Result[T]

// Poll calls f.
func (f Func[T]) Poll() Result[T] {
	return f()
}
