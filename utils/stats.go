package utils

import "time"

// Stats tracks the population over a run
type Stats struct {
	StartTime        time.Time
	TotalGenerations int
	LivingCells      int
	PeakLivingCells  int
	PeakGeneration   int
	MinLivingCells   int

	totalLiving int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the live cell count rendered for generation
func (s *Stats) Update(generation int, livingCells int) {
	s.TotalGenerations = generation
	s.LivingCells = livingCells
	s.totalLiving += livingCells

	if livingCells > s.PeakLivingCells {
		s.PeakLivingCells = livingCells
		s.PeakGeneration = generation
	}
	if generation <= 1 || livingCells < s.MinLivingCells {
		s.MinLivingCells = livingCells
	}
}

// AveragePopulation is the mean live cell count across recorded generations
func (s *Stats) AveragePopulation() float64 {
	if s.TotalGenerations == 0 {
		return 0
	}
	return float64(s.totalLiving) / float64(s.TotalGenerations)
}

// GenerationsPerSecond is measured over the whole run, pauses included
func (s *Stats) GenerationsPerSecond() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.TotalGenerations) / elapsed
}

// Elapsed returns the time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
