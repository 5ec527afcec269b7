//go:build rtquiet

package rt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_Quiet(t *testing.T) {
	assert := assert.New(t)

	rt, out := newTestRuntime(64, 0)
	status, err := rt.Run(func(rt *Runtime) {
		rt.AssertAt(false, "src", 42)
	})
	assert.NoError(err)
	assert.Equal(int32(CODE_ASSERTION), status)
	assert.Empty(out.String())

	rt, out = newTestRuntime(16, 0)
	status, err = rt.Run(func(rt *Runtime) {
		rt.Sbrk(17)
	})
	assert.NoError(err)
	assert.Equal(int32(CODE_HEAP_EXHAUSTED), status)
	assert.Empty(out.String())
}
