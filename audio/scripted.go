package audio

// Scripted replays a canned sequence of feature snapshots, one per
// call, then silence. Used by tests and demos that need a fully
// deterministic signal schedule.
type Scripted struct {
	steps []Features
	idx   int
}

// NewScripted builds a provider that returns the given snapshots in
// order
func NewScripted(steps ...Features) *Scripted {
	return &Scripted{steps: steps}
}

// Features returns the next scripted snapshot, or a zero snapshot once
// the script is exhausted
func (s *Scripted) Features() Features {
	if s.idx >= len(s.steps) {
		return Features{}
	}
	f := s.steps[s.idx]
	s.idx++
	return f
}

// Remaining reports how many scripted snapshots are left
func (s *Scripted) Remaining() int {
	return len(s.steps) - s.idx
}
