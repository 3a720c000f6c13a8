package feedback

import "git.lost.host/meutraa/fall/internal/game"

// DisplayFrames is how long one judgment stays on screen.
const DisplayFrames = 30

// Display holds the most recent judgment for a fixed number of frames.
// Not scoring-relevant; the engine only feeds and ticks it.
type Display struct {
	tier   game.Tier
	frames int
}

func (d *Display) Show(t game.Tier) {
	d.tier = t
	d.frames = DisplayFrames
}

// Advance ticks the countdown, once per engine frame.
func (d *Display) Advance() {
	if d.frames > 0 {
		d.frames--
	}
}

func (d *Display) Visible() bool {
	return d.frames > 0
}

func (d *Display) Tier() game.Tier {
	return d.tier
}
