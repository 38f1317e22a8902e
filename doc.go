// Package looplet is a minimal cooperative task executor with a
// fixed-capacity slot table.
//
// An [Executor] is created with a capacity that never changes. Callers
// construct [Task] values, each pairing an identity with a resumable
// [Computation], create at most one [Handle] per task, and register the
// pairs with [Spawn]. The [Executor.Run] method then polls every
// occupied slot in table order, pass after pass, until all tasks have
// completed; at the moment a computation completes, its value is written
// into the bound handle and the slot is freed for reuse. Results are
// read out of the handles after Run returns.
//
// # Cooperative, Not Parallel
//
// There is exactly one logical thread of control. "Concurrency" here
// means interleaving at suspension points: a computation runs
// uninterrupted from one poll to the point where it returns, and the
// only way control comes back to the executor is to report suspension or
// to complete. A computation that blocks, blocks every other task in the
// table. The best practice is to suspend often and not to block.
//
// # Suspension
//
// A computation suspends by returning [Suspended] from its Poll method.
// The usual way to introduce a suspension boundary inside a larger state
// machine is a [Yield]: polled once it suspends, polled again it
// completes and re-arms, giving the round-robin loop a chance to visit
// every other occupied slot in between. The optional callback set with
// [Executor.OnPending] observes each suspension, receiving the identity
// of the task that suspended.
//
// # Ownership
//
// Tasks and handles are owned by the caller. The executor borrows them
// between [Spawn] and completion, holds them by reference only, and
// never copies or relocates them. Nothing is allocated per poll; the
// slot table is the executor's only storage and its size is the only
// configuration knob, fixed at construction ([New] uses
// [DefaultCapacity]).
//
// The only recoverable error in the package is [ErrNoFreeSlots],
// returned by [Spawn] when the table is full. Everything else the design
// leaves to the caller: a task that never completes makes Run spin
// forever, and misuse of the API (a nil computation, a foreign handle, a
// double registration) panics rather than being reported.
package looplet
