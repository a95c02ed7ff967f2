package game

import (
	"sort"
	"time"
)

// perfWindow is the number of samples kept per system.
const perfWindow = 120

// PerfStats keeps a rolling window of execution times per system.
type PerfStats struct {
	samples map[string][]time.Duration
}

// NewPerfStats creates an empty tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{samples: make(map[string][]time.Duration)}
}

// Record adds a duration sample for the named system, dropping the oldest
// once the window is full.
func (p *PerfStats) Record(name string, d time.Duration) {
	s := append(p.samples[name], d)
	if len(s) > perfWindow {
		s = s[len(s)-perfWindow:]
	}
	p.samples[name] = s
}

// Count returns the number of samples held for the named system.
func (p *PerfStats) Count(name string) int {
	return len(p.samples[name])
}

// Avg returns the mean duration for the named system.
func (p *PerfStats) Avg(name string) time.Duration {
	s := p.samples[name]
	if len(s) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range s {
		total += d
	}
	return total / time.Duration(len(s))
}

// Total returns the sum of all averages.
func (p *PerfStats) Total() time.Duration {
	var total time.Duration
	for name := range p.samples {
		total += p.Avg(name)
	}
	return total
}

// SortedNames returns system names, slowest first.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.samples))
	for name := range p.samples {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ai, aj := p.Avg(names[i]), p.Avg(names[j])
		if ai != aj {
			return ai > aj
		}
		return names[i] < names[j]
	})
	return names
}
