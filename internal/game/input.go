package game

// Input is one raw press or release as the engine saw it, recorded for
// replay persistence.
type Input struct {
	Lane  int
	Frame uint64
	Press bool
}
