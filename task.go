package looplet

import "github.com/google/uuid"

// A Task pairs a human-readable identity with one [Computation].
//
// A Task is created by the caller, registered into an [Executor] with
// [Spawn], and mutated only by the executor's poll step while it is
// registered. The caller must not poll, re-register or otherwise touch
// the task between [Spawn] and the completion of that task; afterwards
// the task is the caller's again.
type Task[T any] struct {
	name       string
	comp       Computation[T]
	handle     *Handle[T]
	registered bool
}

// NewTask creates a [Task] with the given identity, working on comp.
//
// If name is empty, a generated identity is assigned.
func NewTask[T any](name string, comp Computation[T]) *Task[T] {
	if comp == nil {
		panic("looplet: NewTask(nil): undefined behavior")
	}
	if name == "" {
		name = uuid.NewString()
	}
	return &Task[T]{name: name, comp: comp}
}

// Name returns the identity of t.
func (t *Task[T]) Name() string {
	return t.name
}

// NewHandle creates the one-shot result cell bound to t and returns it.
//
// A task has at most one handle. NewHandle panics when called twice on
// the same task.
func (t *Task[T]) NewHandle() *Handle[T] {
	if t.handle != nil {
		panic("looplet: NewHandle: task already has a handle")
	}
	t.handle = &Handle[T]{}
	return t.handle
}

func (t *Task[T]) taskName() string {
	return t.name
}

// pollOnce advances the computation one step. At the moment it completes,
// the bound handle, if any, is populated.
func (t *Task[T]) pollOnce() bool {
	res := t.comp.Poll()
	if !res.done {
		return false
	}
	if h := t.handle; h != nil {
		h.value = res.value
		h.done = true
	}
	return true
}

func (t *Task[T]) release() {
	t.registered = false
}

// A Handle is a one-shot result cell bound to exactly one [Task] at
// creation time.
//
// A Handle starts empty and is written exactly once, by the executor, at
// the moment the bound task's computation completes. The caller reads it
// with [Handle.Result], meaningfully only after [Executor.Run] has
// returned. There is no way to block on a Handle; letting Run finish is
// the only completion signal this design exposes.
type Handle[T any] struct {
	value T
	done  bool
}

// Result returns the completion value of the bound task, with done
// reporting whether the task has completed yet.
func (h *Handle[T]) Result() (value T, done bool) {
	return h.value, h.done
}
