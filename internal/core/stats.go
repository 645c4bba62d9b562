package core

import "time"

// RunStats tracks coarse throughput and population figures for a run.
type RunStats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

// NewRunStats starts a fresh tracker.
func NewRunStats() *RunStats {
	return &RunStats{StartTime: time.Now()}
}

// Record folds one completed generation into the tracker. duration is the
// wall-clock cost of that single step.
func (s *RunStats) Record(generation, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Moving average keeps recent generations dominant.
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Elapsed returns the wall-clock time since the tracker started.
func (s *RunStats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
