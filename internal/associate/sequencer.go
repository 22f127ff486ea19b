package associate

// Sequencer hands out dense, 1-based sequence numbers per record code for a whole
// run. It is owned by the run and passed into each document's association.
type Sequencer struct {
	counts map[string]int
}

func NewSequencer() *Sequencer {
	return &Sequencer{counts: make(map[string]int)}
}

// Next increments and returns the counter for code.
func (s *Sequencer) Next(code string) int {
	s.counts[code]++
	return s.counts[code]
}

// Current returns the last number issued for code, 0 if none.
func (s *Sequencer) Current(code string) int {
	return s.counts[code]
}
