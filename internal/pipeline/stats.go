package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int
	Current   int
	Renamed   int // Includes dry-run previews.
	Unchanged int
	Skipped   int
	Failed    int
}

// Processed returns how many files reached a final state.
func (s *RunStats) Processed() int {
	return s.Renamed + s.Unchanged + s.Skipped + s.Failed
}
