package score

import "git.lost.host/meutraa/fall/internal/game"

// Store persists the raw input trace of finished sessions, keyed by chart.
type Store interface {
	Init() error
	Deinit()

	// Save the press/release trace of this session
	Save(chart *game.Chart, inputs []game.Input)

	// Load up previous traces for the chart
	Load(chart *game.Chart) []Replay
}

type Replay struct {
	Sum    string
	Inputs []game.Input
}
