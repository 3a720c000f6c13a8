package score

import "git.lost.host/meutraa/fall/internal/game"

// Ledger accumulates points and combo for one session. One instance per
// session, owned by the engine.
type Ledger struct {
	Score    int
	Combo    int
	MaxCombo int
}

// Add applies one judgment. Bad and Miss break the combo, every other
// tier extends it.
func (l *Ledger) Add(t game.Tier) {
	l.Score += game.Judgements[t].Points
	if t.BreaksCombo() {
		l.Combo = 0
		return
	}
	l.Combo++
	if l.Combo > l.MaxCombo {
		l.MaxCombo = l.Combo
	}
}

func (l *Ledger) Reset() {
	l.Score = 0
	l.Combo = 0
	l.MaxCombo = 0
}
