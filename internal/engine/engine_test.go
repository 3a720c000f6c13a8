package engine

import (
	"testing"

	"git.lost.host/meutraa/fall/internal/feedback"
	"git.lost.host/meutraa/fall/internal/game"
	"git.lost.host/meutraa/fall/internal/score"
)

func newSession(t *testing.T, notes ...*game.Note) (*Engine, *score.Ledger, *feedback.Display) {
	chart := &game.Chart{
		Title:      "test",
		Difficulty: "test",
		Notes:      notes,
		NoteCount:  int64(len(notes)),
	}
	ledger := &score.Ledger{}
	display := &feedback.Display{}
	e := New(chart, ledger, display, nil)
	if err := e.Start(); nil != err {
		t.Fatal(err)
	}
	return e, ledger, display
}

func TestStartRefusesEmptyChart(t *testing.T) {
	e := New(&game.Chart{}, &score.Ledger{}, &feedback.Display{}, nil)
	if err := e.Start(); nil == err {
		t.Fail()
	}
}

func TestStartResetsSession(t *testing.T) {
	e, ledger, _ := newSession(t, &game.Note{Lane: 0, Y: 495})
	e.OnLanePress(0)
	if ledger.Score == 0 || !e.Done() {
		t.Log("score", ledger.Score)
		t.Fail()
	}
	if err := e.Start(); nil != err {
		t.Fatal(err)
	}
	if ledger.Score != 0 || e.Done() || e.Frame() != 0 || len(e.Inputs()) != 0 {
		t.Log("score", ledger.Score, "frame", e.Frame())
		t.Fail()
	}
}

// One normal note, 10 ticks at speed 5 leaves it 10 units short of the
// line: a press then is a Perfect.
func TestNormalNotePerfect(t *testing.T) {
	e, ledger, _ := newSession(t, &game.Note{Lane: 0, Y: 440})
	for i := 0; i < 10; i++ {
		e.Update()
	}
	e.OnLanePress(0)
	if ledger.Score != 300 || ledger.Combo != 1 {
		t.Log("score", ledger.Score, "combo", ledger.Combo)
		t.Fail()
	}
	if !e.Done() || e.Counts()[game.Perfect] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
}

func TestEmptyPressIsNoOp(t *testing.T) {
	e, ledger, _ := newSession(t, &game.Note{Lane: 0, Y: 0})
	e.OnLanePress(0)
	if ledger.Score != 0 || ledger.Combo != 0 || len(e.Notes()) != 1 {
		t.Log("score", ledger.Score, "notes", len(e.Notes()))
		t.Fail()
	}
	if !e.Lanes()[0].Pressed {
		t.Fail()
	}
	// Unmapped lanes are ignored outright
	e.OnLanePress(-1)
	e.OnLanePress(game.NLanes)
}

// Two stacked notes in one lane: the earlier-created one wins even
// though the later one is closer to the line.
func TestFirstInLaneWins(t *testing.T) {
	far := &game.Note{Lane: 0, Y: 450}
	near := &game.Note{Lane: 0, Y: 495}
	e, ledger, _ := newSession(t, far, near)
	e.OnLanePress(0)
	if e.Counts()[game.Bad] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
	if ledger.Score != 50 || ledger.Combo != 0 {
		t.Log("score", ledger.Score, "combo", ledger.Combo)
		t.Fail()
	}
	if len(e.Notes()) != 1 || e.Notes()[0].Y != 495 {
		t.Log("notes", e.Notes())
		t.Fail()
	}
}

// A hold head press starts the hold without scoring; releasing before
// the tail nears the line fails it with a Miss.
func TestHoldEarlyReleaseMiss(t *testing.T) {
	e, ledger, display := newSession(t,
		&game.Note{Lane: 1, Kind: game.Hold, Y: 480, Length: 100})
	e.OnLanePress(1)

	n := e.Notes()[0]
	if !n.Held || !n.Judged {
		t.Log("note", *n)
		t.Fail()
	}
	if ledger.Score != 0 || ledger.Combo != 0 {
		t.Log("head judgment must not score:", ledger.Score)
		t.Fail()
	}
	if !display.Visible() || display.Tier() != game.Great {
		t.Log("tier", display.Tier())
		t.Fail()
	}

	e.OnLaneRelease(1)
	if ledger.Score != 0 || ledger.Combo != 0 {
		t.Log("score", ledger.Score)
		t.Fail()
	}
	if !e.Done() || e.Counts()[game.Miss] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
}

// A hold held to completion awards a flat Great, and the later release
// finds nothing left to resolve.
func TestHoldCompletionSingleResolution(t *testing.T) {
	e, ledger, _ := newSession(t,
		&game.Note{Lane: 2, Kind: game.Hold, Y: 495, Length: 20})
	e.OnLanePress(2)
	for i := 0; i < 4; i++ {
		e.Update()
	}
	if !e.Done() || e.Counts()[game.Great] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
	if ledger.Score != 200 || ledger.Combo != 1 {
		t.Log("score", ledger.Score, "combo", ledger.Combo)
		t.Fail()
	}

	e.OnLaneRelease(2)
	if ledger.Score != 200 || e.Counts()[game.Great] != 1 {
		t.Log("resolved twice:", ledger.Score)
		t.Fail()
	}
}

// Completion with the key already up is a Miss, not a Great.
func TestHoldCompletionKeyUpMiss(t *testing.T) {
	e, ledger, _ := newSession(t,
		&game.Note{Lane: 2, Kind: game.Hold, Y: 495, Length: 20})
	e.OnLanePress(2)
	e.Lanes()[2].Pressed = false
	e.Update()
	if !e.Done() || e.Counts()[game.Miss] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
	if ledger.Score != 0 {
		t.Log("score", ledger.Score)
		t.Fail()
	}
}

// Releasing once the tail is past line+allowance completes the hold.
func TestHoldLateReleaseGreat(t *testing.T) {
	e, ledger, _ := newSession(t,
		&game.Note{Lane: 3, Kind: game.Hold, Y: 560, Length: 20})
	e.Notes()[0].Held = true
	e.Notes()[0].Judged = true
	e.Lanes()[3].Pressed = true
	e.OnLaneRelease(3)
	if e.Counts()[game.Great] != 1 || ledger.Score != 200 {
		t.Log("counts", e.Counts(), "score", ledger.Score)
		t.Fail()
	}
}

// An untouched note times out: no score while offscreen grace runs,
// then exactly one Miss.
func TestOffscreenGraceMiss(t *testing.T) {
	e, ledger, _ := newSession(t, &game.Note{Lane: 0, Y: 651})
	for i := 0; i < game.GraceFrames-1; i++ {
		e.Update()
	}
	if ledger.Score != 0 || len(e.Notes()) != 1 || e.Counts()[game.Miss] != 0 {
		t.Log("early miss at frame", e.Frame())
		t.Fail()
	}
	e.Update()
	if !e.Done() || e.Counts()[game.Miss] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
}

// The per-frame sustain check also fails a hold whose key went up, even
// if the release event itself was never delivered.
func TestHoldSustainCheckMiss(t *testing.T) {
	e, _, _ := newSession(t,
		&game.Note{Lane: 1, Kind: game.Hold, Y: 480, Length: 200})
	e.OnLanePress(1)
	e.Lanes()[1].Pressed = false
	e.Update()
	if !e.Done() || e.Counts()[game.Miss] != 1 {
		t.Log("counts", e.Counts())
		t.Fail()
	}
}

func TestInputsRecorded(t *testing.T) {
	e, _, _ := newSession(t, &game.Note{Lane: 0, Y: 0})
	e.OnLanePress(0)
	e.Update()
	e.OnLaneRelease(0)
	ins := e.Inputs()
	if len(ins) != 2 {
		t.Log("inputs", ins)
		t.Fail()
	}
	if !ins[0].Press || ins[0].Frame != 0 {
		t.Log("inputs", ins)
		t.Fail()
	}
	if ins[1].Press || ins[1].Frame != 1 {
		t.Log("inputs", ins)
		t.Fail()
	}
}
