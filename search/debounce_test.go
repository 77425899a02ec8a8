package search_test

import (
	"testing"
	"time"

	"github.com/redsepro/knacks/mock"
	"github.com/redsepro/knacks/search"
	"github.com/stretchr/testify/assert"
)

func TestDebouncer(t *testing.T) {
	t.Parallel()

	t.Run("runs after the delay", func(t *testing.T) {
		t.Parallel()

		clock := &mock.Clock{}
		d := search.NewDebouncer(clock, 250*time.Millisecond)
		calls := 0

		d.Arm(func() { calls++ })
		clock.Advance(249 * time.Millisecond)
		assert.Equal(t, 0, calls)
		assert.True(t, d.Pending())

		clock.Advance(time.Millisecond)
		assert.Equal(t, 1, calls)
		assert.False(t, d.Pending())
	})

	t.Run("rearming runs only the last call", func(t *testing.T) {
		t.Parallel()

		clock := &mock.Clock{}
		d := search.NewDebouncer(clock, 250*time.Millisecond)
		var got []string

		d.Arm(func() { got = append(got, "d") })
		clock.Advance(100 * time.Millisecond)
		d.Arm(func() { got = append(got, "do") })
		clock.Advance(100 * time.Millisecond)
		d.Arm(func() { got = append(got, "doc") })
		clock.Advance(250 * time.Millisecond)

		assert.Equal(t, []string{"doc"}, got)
	})

	t.Run("cancel drops the pending call", func(t *testing.T) {
		t.Parallel()

		clock := &mock.Clock{}
		d := search.NewDebouncer(clock, 250*time.Millisecond)
		calls := 0

		d.Arm(func() { calls++ })
		assert.True(t, d.Cancel())
		assert.False(t, d.Cancel())
		clock.Advance(time.Second)

		assert.Equal(t, 0, calls)
	})
}
