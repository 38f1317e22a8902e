package looplet

import "errors"

// ErrNoFreeSlots is returned by [Spawn] when every slot of an [Executor]
// is occupied. The slot table is left unchanged; the caller may retry
// after a run has freed slots, or drop the task.
var ErrNoFreeSlots = errors.New("looplet: no free slots")

// DefaultCapacity is the slot table size used by [New].
const DefaultCapacity = 1

// An Executor is a [Task] runner with a fixed-capacity table of slots.
//
// Each slot optionally holds one task/handle pair registered with
// [Spawn]. The Run method then polls every occupied slot in table order,
// pass after pass, until all registered tasks have completed.
// It is done in a single-threaded manner.
// If one computation blocks, no other tasks can run.
// The best practice is to suspend often and not to block.
//
// The capacity is fixed at construction and immutable thereafter. The
// executor never copies or relocates a task; slots hold references to
// caller-owned storage only.
type Executor struct {
	slots   []slot
	pending func(name string)
}

type slot struct {
	r runner
}

// runner is the non-generic face a slot holds on a [Task].
type runner interface {
	taskName() string
	pollOnce() bool
	release()
}

// New returns an [Executor] with [DefaultCapacity] slots, all free.
func New() *Executor {
	return NewSized(DefaultCapacity)
}

// NewSized returns an [Executor] with the given number of slots, all
// free. The capacity is fixed for the lifetime of the executor.
// NewSized panics if capacity is less than 1.
func NewSized(capacity int) *Executor {
	if capacity < 1 {
		panic("looplet: NewSized: capacity must be at least 1")
	}
	return &Executor{slots: make([]slot, capacity)}
}

// OnPending sets f to be invoked with a task's identity every time that
// task's computation reports suspension during [Executor.Run]. If unset,
// suspensions are silently ignored.
//
// f is called synchronously from the polling loop, once per suspension,
// with no queuing or buffering.
func (e *Executor) OnPending(f func(name string)) {
	e.pending = f
}

// Cap returns the number of slots of e.
func (e *Executor) Cap() int {
	return len(e.slots)
}

// Busy returns the number of occupied slots of e.
func (e *Executor) Busy() int {
	n := 0
	for i := range e.slots {
		if e.slots[i].r != nil {
			n++
		}
	}
	return n
}

// Spawn registers the task/handle pair into the first free slot of e.
// It returns [ErrNoFreeSlots], leaving the table unchanged, when every
// slot is occupied.
//
// The handle must be the one created from the task with
// [Task.NewHandle], or nil if none was created; the pair stays bound to
// its slot until the task completes. Spawn never polls the computation;
// no work happens before [Executor.Run].
//
// Spawn panics on a nil task, on a handle not bound to the task, and on
// a task that is already registered.
func Spawn[T any](e *Executor, t *Task[T], h *Handle[T]) error {
	if t == nil {
		panic("looplet: Spawn(nil): undefined behavior")
	}
	if h != t.handle {
		panic("looplet: Spawn: handle is not bound to this task")
	}
	if t.registered {
		panic("looplet: Spawn: task is already registered")
	}
	for i := range e.slots {
		if e.slots[i].r == nil {
			t.registered = true
			e.slots[i].r = t
			return nil
		}
	}
	return ErrNoFreeSlots
}

// Run drives every registered task to completion and returns once all
// slots are free.
//
// While at least one slot is occupied, Run iterates the slots in table
// order and polls each occupied slot's computation once. A suspension
// leaves the slot occupied and invokes the pending callback, if set,
// with the task's identity. A completion writes the value into the bound
// handle and frees the slot; the computation is never polled again.
//
// Run is cooperative: control only leaves it through the computations it
// polls. If a registered computation never completes, Run never returns.
func (e *Executor) Run() {
	for {
		busy := false
		for i := range e.slots {
			r := e.slots[i].r
			if r == nil {
				continue
			}
			if r.pollOnce() {
				e.slots[i].r = nil
				r.release()
				continue
			}
			busy = true
			if e.pending != nil {
				e.pending(r.taskName())
			}
		}
		if !busy {
			return
		}
	}
}
