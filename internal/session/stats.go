package session

// Stats counts what a session did.
type Stats struct {
	Queries     int // Words looked up.
	Suggestions int // Labeled suggestions printed across all queries.
	Unmatched   int // Queries that produced no suggestion.
}

func (s *Stats) record(n int) {
	s.Queries++
	s.Suggestions += n
	if n == 0 {
		s.Unmatched++
	}
}
