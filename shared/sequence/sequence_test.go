package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitThenDo(t *testing.T) {
	var r Runner
	done := false
	r.Start("wait", Wait(0.5), Do(func() { done = true }))

	r.Advance(0.25)
	assert.False(t, done)
	assert.True(t, r.IsRunning())

	r.Advance(0.25)
	assert.True(t, done)
	assert.False(t, r.IsRunning())
	assert.Equal(t, Stats{Started: 1, Completed: 1}, r.Stats())
}

func TestLeftoverTimeCarriesAcrossWaits(t *testing.T) {
	var r Runner
	var order []string
	r.Start("combo",
		Wait(0.25),
		Do(func() { order = append(order, "a") }),
		Wait(0.25),
		Do(func() { order = append(order, "b") }),
		Wait(0.25),
		Do(func() { order = append(order, "c") }),
	)

	r.Advance(0.5)
	assert.Equal(t, []string{"a", "b"}, order)

	r.Advance(0.25)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.False(t, r.IsRunning())
}

func TestZeroWaitCompletesOnFirstAdvance(t *testing.T) {
	var r Runner
	fired := false
	r.Start("think", Wait(0), Do(func() { fired = true }))
	r.Advance(1.0 / 60)
	assert.True(t, fired)
}

func TestUntilPolledEachAdvance(t *testing.T) {
	var r Runner
	ready := false
	finished := false
	r.Start("until", Until(func() bool { return ready }), Do(func() { finished = true }))

	for i := 0; i < 5; i++ {
		r.Advance(0.1)
	}
	assert.False(t, finished)
	assert.True(t, r.IsRunning())

	ready = true
	r.Advance(0.1)
	assert.True(t, finished)
	assert.False(t, r.IsRunning())
}

func TestStartCancelsPrevious(t *testing.T) {
	var r Runner
	stale := false
	fresh := false

	assert.False(t, r.Start("first", Wait(0.5), Do(func() { stale = true })))
	r.Advance(0.25)

	assert.True(t, r.Start("second", Wait(0.5), Do(func() { fresh = true })))
	assert.Equal(t, "second", r.Name())

	r.Advance(0.25)
	r.Advance(0.25)
	assert.False(t, stale, "cancelled sequence must not mutate state")
	assert.True(t, fresh)

	stats := r.Stats()
	assert.Equal(t, 2, stats.Started)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 1, stats.Completed)
}

func TestStopFromInsideStep(t *testing.T) {
	var r Runner
	after := false
	r.Start("self-stop", Do(func() { r.Stop() }), Do(func() { after = true }))
	r.Advance(0.1)
	assert.False(t, after)
	assert.False(t, r.IsRunning())
}

func TestRestartFromInsideStep(t *testing.T) {
	var r Runner
	var order []string
	r.Start("outer",
		Do(func() {
			order = append(order, "outer")
			r.Start("inner", Wait(0.25), Do(func() { order = append(order, "inner") }))
		}),
		Do(func() { order = append(order, "outer-tail") }),
	)

	r.Advance(0.1)
	require.True(t, r.IsRunning())
	assert.Equal(t, "inner", r.Name())

	r.Advance(0.25)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestNeverMoreThanOneActive(t *testing.T) {
	var r Runner
	for i := 0; i < 10; i++ {
		r.Start("s", Wait(1))
		r.Advance(0.1)
	}
	stats := r.Stats()
	assert.Equal(t, 10, stats.Started)
	assert.Equal(t, 9, stats.Cancelled)
	assert.Equal(t, 0, stats.Completed)
	assert.True(t, r.IsRunning())
}

func TestEmptySequenceCompletesImmediately(t *testing.T) {
	var r Runner
	r.Start("empty")
	assert.False(t, r.IsRunning())
	assert.Equal(t, "", r.Name())
	assert.Equal(t, 1, r.Stats().Completed)
}
