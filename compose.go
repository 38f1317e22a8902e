package looplet

// Do returns a [Computation] that calls f and completes with its result
// on the first poll. Further polls return the same completion without
// calling f again.
func Do[T any](f func() T) Computation[T] {
	var res Result[T]
	return Func[T](func() Result[T] {
		if !res.done {
			res = Completed(f())
		}
		return res
	})
}

// Steps returns a [Computation] that runs one of the given functions per
// poll, in order, suspending after each but the last. A computation of
// n steps therefore suspends n-1 times before completing.
//
// With no steps, the computation completes on its first poll.
func Steps(steps ...func()) Computation[Unit] {
	i := 0
	return Func[Unit](func() Result[Unit] {
		if i < len(steps) {
			steps[i]()
			i++
		}
		if i < len(steps) {
			return Suspended[Unit]()
		}
		return Completed(Unit{})
	})
}

// Then returns a [Computation] that works on c until it completes, then
// switches to the computation f makes from c's value. The switch happens
// on the same poll that completes c, so no extra suspension is added
// between the two.
func Then[T, U any](c Computation[T], f func(T) Computation[U]) Computation[U] {
	if f == nil {
		panic("looplet: Then(nil): undefined behavior")
	}
	var next Computation[U]
	return Func[U](func() Result[U] {
		if next == nil {
			res := c.Poll()
			if !res.done {
				return Suspended[U]()
			}
			next = f(res.value)
		}
		return next.Poll()
	})
}

// Gather returns a [Computation] that polls every unfinished child once
// per poll and completes with all their values once every child has
// completed. Values appear in the order the children were given,
// regardless of completion order. A completed child is never polled
// again.
//
// With no children, the computation completes on its first poll with an
// empty slice.
func Gather[T any](cs ...Computation[T]) Computation[[]T] {
	pending := make([]Computation[T], len(cs))
	copy(pending, cs)
	values := make([]T, len(cs))
	left := len(cs)
	return Func[[]T](func() Result[[]T] {
		for i, c := range pending {
			if c == nil {
				continue
			}
			if res := c.Poll(); res.done {
				values[i] = res.value
				pending[i] = nil
				left--
			}
		}
		if left > 0 {
			return Suspended[[]T]()
		}
		return Completed(values)
	})
}

// Never returns a [Computation] that never completes. A task working on
// it keeps its slot occupied forever and makes [Executor.Run] spin.
func Never[T any]() Computation[T] {
	return Func[T](Suspended[T])
}
