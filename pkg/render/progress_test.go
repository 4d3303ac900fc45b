package render_test

import (
	"testing"

	. "github.com/dorisops/dorisctl/pkg/render"
	"gotest.tools/v3/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[==========          ] 50%", ProgressBar(5, 10, 20))
	assert.Equal(t, "[====================] 100%", ProgressBar(10, 10, 20))
	assert.Equal(t, "[                    ] 0%", ProgressBar(0, 10, 20))
	assert.Equal(t, "[                    ] 0%", ProgressBar(0, 0, 20))
	// Over-complete input is clamped.
	assert.Equal(t, "[====================] 100%", ProgressBar(15, 10, 20))
	assert.Equal(t, "[=====     ] 50%", ProgressBar(1, 2, 10))
}
