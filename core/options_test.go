package core_test

import (
	"testing"

	"github.com/me21jarus/dsa/core"
	"github.com/stretchr/testify/assert"
)

// TestNewOptions_Defaults checks hooks are callable no-ops and positions are strict.
func TestNewOptions_Defaults(t *testing.T) {
	o := core.NewOptions[int]()
	assert.NotPanics(t, func() {
		o.OnInsert(1)
		o.OnRelease(1)
	})
	assert.False(t, o.ClampPositions)
}

// TestNewOptions_Apply checks later options win and nil entries are skipped.
func TestNewOptions_Apply(t *testing.T) {
	var got []string
	o := core.NewOptions(
		core.WithReleaseHook(func(v string) { got = append(got, "first:"+v) }),
		nil,
		core.WithReleaseHook(func(v string) { got = append(got, "second:"+v) }),
		core.WithReleaseHook[string](nil),
		core.WithClampPositions[string](),
	)
	o.OnRelease("x")
	assert.Equal(t, []string{"second:x"}, got)
	assert.True(t, o.ClampPositions)
}
