package game

// Kind selects the note variant. The set is closed: every decision point
// (advance, hit test, draw) handles exactly these two.
type Kind uint8

const (
	Normal Kind = iota
	Hold
)

const (
	// NLanes is the number of playable columns.
	NLanes = 4
	// HitWindow is the outer judgable distance from the line.
	HitWindow = 60.0
	// OffscreenMargin is how far past the field edge a note must travel
	// before it counts as fully exited.
	OffscreenMargin = 50.0
	// GraceFrames is the delay between a note fully exiting the field and
	// its automatic miss.
	GraceFrames = 180
)

// Note is a single playable event. Lane and Kind are fixed at creation;
// everything else is lifecycle state owned by the engine.
type Note struct {
	Lane int
	Kind Kind
	Y    float64 // head position, grows as the note falls toward the line

	Length float64 // hold only: remaining body length, shrinks while held
	Held   bool    // hold only: head judged, completion still pending

	Judged          bool
	OffscreenFrames int // frames spent fully offscreen while unjudged
}

// Advance moves the note by one frame. A held note keeps its head pinned
// and shrinks instead, so the tail closes in on the line.
func (n *Note) Advance(speed float64) {
	if n.Kind == Hold && n.Held {
		n.Length -= speed
		if n.Length < 0 {
			n.Length = 0
		}
		return
	}
	n.Y += speed
}

// HeadY is the judgable edge of the note.
func (n *Note) HeadY() float64 {
	return n.Y
}

// TailY is the trailing edge of a hold body. For a normal note it
// coincides with the head.
func (n *Note) TailY() float64 {
	if n.Kind == Hold {
		return n.Y - n.Length
	}
	return n.Y
}

// DistanceToLine is always measured against the head, also for holds.
func (n *Note) DistanceToLine(line float64) float64 {
	d := n.HeadY() - line
	if d < 0 {
		return -d
	}
	return d
}

func (n *Note) InHitWindow(line, window float64) bool {
	return n.DistanceToLine(line) < window
}

// PastScreen reports whether the note has fully exited the field: the
// head for a normal note, the tail for a hold.
func (n *Note) PastScreen(extent float64) bool {
	edge := n.Y
	if n.Kind == Hold {
		edge = n.TailY()
	}
	return edge > extent+OffscreenMargin
}
