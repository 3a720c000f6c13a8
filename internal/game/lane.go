package game

// Lane is one playable column. Pressed mirrors the physical key state and
// only drives the hold-sustain check, never judgment timing.
type Lane struct {
	Index   int
	Pressed bool
}

func NewLanes() []*Lane {
	lanes := make([]*Lane, NLanes)
	for i := range lanes {
		lanes[i] = &Lane{Index: i}
	}
	return lanes
}
