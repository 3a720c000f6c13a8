package game

// Chart is the static note data for one difficulty of a song. Notes are
// kept in creation (file) order; the engine's lane scan depends on it.
type Chart struct {
	Title      string
	Difficulty string
	Notes      []*Note
	NoteCount  int64
	HoldCount  int64
}

// Spawn copies the chart notes into a fresh active set so a session never
// mutates the chart it was built from.
func (c *Chart) Spawn() []*Note {
	notes := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		nn := *n
		notes[i] = &nn
	}
	return notes
}
