package core

import (
	"math"
	"testing"
	"time"
)

func TestRunStatsRecord(t *testing.T) {
	s := NewRunStats()
	s.Record(1, 100, 10*time.Millisecond)
	if s.TotalGenerations != 1 {
		t.Fatalf("TotalGenerations = %d, want 1", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-100) > 1e-6 {
		t.Fatalf("GenerationsPerSecond = %v, want 100", s.GenerationsPerSecond)
	}
	if s.AveragePopulation != 100 {
		t.Fatalf("first AveragePopulation = %v, want 100", s.AveragePopulation)
	}

	s.Record(2, 200, 10*time.Millisecond)
	want := 100*0.9 + 200*0.1
	if math.Abs(s.AveragePopulation-want) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want %v", s.AveragePopulation, want)
	}
}

func TestRunStatsZeroDuration(t *testing.T) {
	s := NewRunStats()
	s.Record(1, 50, 10*time.Millisecond)
	gps := s.GenerationsPerSecond
	s.Record(2, 50, 0)
	if s.GenerationsPerSecond != gps {
		t.Fatalf("zero duration changed throughput: %v -> %v", gps, s.GenerationsPerSecond)
	}
}
