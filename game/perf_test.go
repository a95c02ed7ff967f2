package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPerfStatsAverage(t *testing.T) {
	p := NewPerfStats()
	p.Record("scheduler", 2*time.Millisecond)
	p.Record("scheduler", 4*time.Millisecond)
	p.Record("resolver", time.Millisecond)

	assert.Equal(t, 3*time.Millisecond, p.Avg("scheduler"))
	assert.Zero(t, p.Avg("missing"))
	assert.Equal(t, 4*time.Millisecond, p.Total())
}

func TestPerfStatsRollingWindow(t *testing.T) {
	p := NewPerfStats()
	for i := 0; i < perfWindow; i++ {
		p.Record("scheduler", time.Second)
	}
	for i := 0; i < perfWindow; i++ {
		p.Record("scheduler", time.Millisecond)
	}

	assert.Equal(t, perfWindow, p.Count("scheduler"))
	assert.Equal(t, time.Millisecond, p.Avg("scheduler"))
}

func TestPerfStatsSortedNames(t *testing.T) {
	p := NewPerfStats()
	p.Record("b", time.Millisecond)
	p.Record("a", time.Millisecond)
	p.Record("c", 5*time.Millisecond)

	assert.Equal(t, []string{"c", "a", "b"}, p.SortedNames())
}
