package looplet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/looplet/looplet"
)

func TestYieldSingleSuspend(t *testing.T) {
	var y looplet.Yield

	assert.False(t, y.Poll().Done(), "first poll suspends")
	assert.True(t, y.Poll().Done(), "second poll completes")
}

func TestYieldRearms(t *testing.T) {
	var y looplet.Yield

	// Never two suspensions in a row, never two completions in a row:
	// each arming is exactly one suspension followed by one completion.
	for i := 0; i < 10; i++ {
		assert.False(t, y.Poll().Done(), "arming %d must suspend first", i)
		assert.True(t, y.Poll().Done(), "arming %d must complete next", i)
	}
}

// A computation embedding one Yield suspends once per loop iteration,
// the way a larger state machine would use it.
func TestYieldInStateMachine(t *testing.T) {
	var y looplet.Yield

	rounds := 0
	comp := looplet.Func[looplet.Unit](func() looplet.Result[looplet.Unit] {
		if res := y.Poll(); !res.Done() {
			return looplet.Suspended[looplet.Unit]()
		}
		rounds++
		if rounds < 3 {
			return looplet.Suspended[looplet.Unit]()
		}
		return looplet.Completed(looplet.Unit{})
	})

	e := looplet.New()
	task := looplet.NewTask("loop", comp)
	handle := task.NewHandle()
	assert.NoError(t, looplet.Spawn(e, task, handle))

	e.Run()

	assert.Equal(t, 3, rounds)
	_, done := handle.Result()
	assert.True(t, done)
}
