package headreader

import "github.com/puzpuzpuz/xsync/v3"

// Stats counts reader outcomes. It is safe for concurrent use and is
// meant to be shared by the readers of all connections.
type Stats struct {
	heads     *xsync.Counter
	retries   *xsync.Counter
	malformed *xsync.Counter
	tooLarge  *xsync.Counter
	bodyBytes *xsync.Counter
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	// Heads is the number of complete heads read.
	Heads int64
	// Retries counts how often a head was found incomplete and more bytes
	// had to be read.
	Retries   int64
	Malformed int64
	TooLarge  int64
	BodyBytes int64
}

// NewStats returns zeroed counters.
func NewStats() *Stats {
	return &Stats{
		heads:     xsync.NewCounter(),
		retries:   xsync.NewCounter(),
		malformed: xsync.NewCounter(),
		tooLarge:  xsync.NewCounter(),
		bodyBytes: xsync.NewCounter(),
	}
}

// Snapshot reads every counter. Counters keep moving while it runs, so
// the fields are not mutually consistent under concurrent updates.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Heads:     s.heads.Value(),
		Retries:   s.retries.Value(),
		Malformed: s.malformed.Value(),
		TooLarge:  s.tooLarge.Value(),
		BodyBytes: s.bodyBytes.Value(),
	}
}
