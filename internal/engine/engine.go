package engine

import (
	"errors"

	"git.lost.host/meutraa/fall/internal/game"
	"git.lost.host/meutraa/fall/internal/score"
)

const (
	// FieldExtent is the playfield depth in position units. Notes spawn
	// above zero and fall toward the bottom.
	FieldExtent = 600.0
	// JudgmentLine is where notes must be hit.
	JudgmentLine = FieldExtent - 100
	// ReleaseAllowance lets a release count as completed once the tail is
	// this close past the line.
	ReleaseAllowance = 30.0
	// DefaultSpeed is the per-frame scroll in position units.
	DefaultSpeed = 5.0
)

// Feedback receives every judgment the engine emits and is ticked once
// per frame. The engine does not know how it is displayed.
type Feedback interface {
	Show(game.Tier)
	Advance()
}

// Audio is started once per session and never resynchronized.
type Audio interface {
	Play()
}

// Engine owns the active note set and resolves every note exactly once:
// hit, completed, failed or timed out.
type Engine struct {
	Speed float64

	chart  *game.Chart
	ledger *score.Ledger
	fb     Feedback
	audio  Audio

	notes  []*game.Note
	lanes  []*game.Lane
	frame  uint64
	inputs []game.Input
	counts [len(game.Judgements)]int
}

func New(chart *game.Chart, ledger *score.Ledger, fb Feedback, audio Audio) *Engine {
	return &Engine{
		Speed:  DefaultSpeed,
		chart:  chart,
		ledger: ledger,
		fb:     fb,
		audio:  audio,
		lanes:  game.NewLanes(),
	}
}

// Start resets the session: ledger zeroed, active set repopulated from
// the chart, audio kicked off. A chart without notes is refused.
func (e *Engine) Start() error {
	if nil == e.chart || len(e.chart.Notes) == 0 {
		return errors.New("chart has no notes")
	}
	e.ledger.Reset()
	e.notes = e.chart.Spawn()
	e.lanes = game.NewLanes()
	e.frame = 0
	e.inputs = nil
	e.counts = [len(game.Judgements)]int{}
	if nil != e.audio {
		e.audio.Play()
	}
	return nil
}

// Update advances the simulation by one frame.
func (e *Engine) Update() {
	e.frame++

	for _, n := range e.notes {
		n.Advance(e.Speed)
	}

	// Hold completion and mid-hold release. Completion is checked first,
	// so a hold that ran out this frame is never failed for the key
	// coming up on the same frame.
	for _, n := range e.snapshot() {
		if n.Kind != game.Hold || !n.Held {
			continue
		}
		if n.Length <= 0 {
			if e.lanes[n.Lane].Pressed {
				e.resolve(n, game.Great)
			} else {
				e.resolve(n, game.Miss)
			}
			continue
		}
		if !e.lanes[n.Lane].Pressed {
			e.resolve(n, game.Miss)
		}
	}

	// Offscreen notes. Unjudged ones get a grace period before the miss
	// is scored; judged leftovers are plain cleanup.
	for _, n := range e.snapshot() {
		if !n.PastScreen(FieldExtent) {
			continue
		}
		if n.Judged {
			e.remove(n)
			continue
		}
		n.OffscreenFrames++
		if n.OffscreenFrames >= game.GraceFrames {
			e.resolve(n, game.Miss)
		}
	}

	e.fb.Advance()
}

// OnLanePress records the key state and runs hit detection: the first
// unjudged in-window note in the lane, in creation order, wins. First
// come, not nearest; two stacked notes resolve in chart order.
func (e *Engine) OnLanePress(lane int) {
	if lane < 0 || lane >= len(e.lanes) {
		return
	}
	e.lanes[lane].Pressed = true
	e.inputs = append(e.inputs, game.Input{Lane: lane, Frame: e.frame, Press: true})

	for _, n := range e.notes {
		if n.Lane != lane || n.Judged {
			continue
		}
		if !n.InHitWindow(JudgmentLine, game.HitWindow) {
			continue
		}
		t := game.Judge(n.DistanceToLine(JudgmentLine))
		if n.Kind == game.Hold {
			// The head judgment only starts the hold and drives
			// feedback; points come from the completion judgment.
			n.Judged = true
			n.Held = true
			e.fb.Show(t)
			return
		}
		e.resolve(n, t)
		return
	}
	// Nothing in the window: no penalty for an empty press.
}

// OnLaneRelease clears the key state and settles any hold in flight. The
// per-frame check in Update covers the same holds; whichever fires first
// removes the note, so the other never sees it.
func (e *Engine) OnLaneRelease(lane int) {
	if lane < 0 || lane >= len(e.lanes) {
		return
	}
	e.lanes[lane].Pressed = false
	e.inputs = append(e.inputs, game.Input{Lane: lane, Frame: e.frame, Press: false})

	for _, n := range e.snapshot() {
		if n.Lane != lane || n.Kind != game.Hold || !n.Held {
			continue
		}
		if n.TailY() >= JudgmentLine+ReleaseAllowance {
			e.resolve(n, game.Great)
		} else {
			e.resolve(n, game.Miss)
		}
	}
}

// resolve scores a note and removes it from the active set. Every
// resolution path funnels through here; removal makes the note invisible
// to all other checks, so double scoring cannot happen.
func (e *Engine) resolve(n *game.Note, t game.Tier) {
	n.Judged = true
	e.ledger.Add(t)
	e.counts[t]++
	e.fb.Show(t)
	e.remove(n)
}

func (e *Engine) remove(n *game.Note) {
	for i, m := range e.notes {
		if m == n {
			e.notes = append(e.notes[:i], e.notes[i+1:]...)
			return
		}
	}
}

// snapshot copies the active set so removal during iteration is safe.
func (e *Engine) snapshot() []*game.Note {
	return append([]*game.Note(nil), e.notes...)
}

// Done reports whether every note has been resolved.
func (e *Engine) Done() bool {
	return len(e.notes) == 0
}

func (e *Engine) Notes() []*game.Note {
	return e.notes
}

func (e *Engine) Lanes() []*game.Lane {
	return e.lanes
}

func (e *Engine) Frame() uint64 {
	return e.frame
}

func (e *Engine) Inputs() []game.Input {
	return e.inputs
}

// Counts returns how many notes resolved at each tier.
func (e *Engine) Counts() []int {
	return e.counts[:]
}
