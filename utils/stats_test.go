package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	if s.AveragePopulation() != 0 {
		t.Errorf("average before any update = %v", s.AveragePopulation())
	}

	for gen, living := range []int{10, 30, 20, 4} {
		s.Update(gen+1, living)
	}

	if s.TotalGenerations != 4 || s.LivingCells != 4 {
		t.Errorf("last update not recorded: %+v", s)
	}
	if s.PeakLivingCells != 30 || s.PeakGeneration != 2 {
		t.Errorf("peak = %d at %d, want 30 at 2", s.PeakLivingCells, s.PeakGeneration)
	}
	if s.MinLivingCells != 4 {
		t.Errorf("min = %d, want 4", s.MinLivingCells)
	}
	if got := s.AveragePopulation(); got != 16 {
		t.Errorf("average = %v, want 16", got)
	}
}

func TestStatsRate(t *testing.T) {
	s := NewStats()
	s.StartTime = time.Now().Add(-2 * time.Second)
	s.Update(1, 5)
	s.Update(2, 5)
	if rate := s.GenerationsPerSecond(); rate <= 0 || rate > 1 {
		t.Errorf("gen/sec = %v, want about 1", rate)
	}
}
