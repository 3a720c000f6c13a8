package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"git.lost.host/meutraa/fall/internal/audio"
	"git.lost.host/meutraa/fall/internal/config"
	"git.lost.host/meutraa/fall/internal/engine"
	"git.lost.host/meutraa/fall/internal/feedback"
	"git.lost.host/meutraa/fall/internal/game"
	"git.lost.host/meutraa/fall/internal/input"
	"git.lost.host/meutraa/fall/internal/parser"
	"git.lost.host/meutraa/fall/internal/render"
	"git.lost.host/meutraa/fall/internal/score"
	"git.lost.host/meutraa/fall/internal/theme"
	"github.com/eiannone/keyboard"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

type cell struct {
	row, col int
}

func run() error {
	// Ensure our Default implementations are used as interfaces
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}
	var player audio.Player = &audio.DefaultPlayer{Delay: *config.Delay}
	var st score.Store = &score.DefaultStore{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard:", err)
		}
	}()

	var audioFile, chartFile string
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg", ".wav":
			audioFile = p
		case ".fc":
			chartFile = p
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	// Audio is optional, the chart is not.
	if chartFile == "" {
		return errors.New("unable to find .fc chart file in given directory")
	}

	charts, err := psr.Parse(chartFile)
	if nil != err {
		return err
	}

	// Difficulty selection
	for i, c := range charts {
		fmt.Printf("%2v) %5v notes  %3v holds  %v\n", i, c.NoteCount, c.HoldCount, c.Difficulty)
	}
	key := <-keyChannel
	index, err := strconv.ParseInt(string(key.Rune), 10, 64)
	if nil != err || index < 0 || index > int64(len(charts)-1) {
		return errors.New("no chart selected")
	}
	chart := charts[index]

	if audioFile == "" {
		log.Println("no audio track found, starting silent session")
	} else if err := player.Load(audioFile); nil != err {
		log.Println("unable to load audio, starting silent session:", err)
	}
	defer player.Close()

	if err := st.Init(); nil != err {
		log.Println("unable to open replay store:", err)
	}
	defer st.Deinit()

	ledger := &score.Ledger{}
	display := &feedback.Display{}
	eng := engine.New(chart, ledger, display, player)
	eng.Speed = *config.Speed

	events := make(chan *input.Event, 128)
	if err := input.ReadInput(*config.Keyboard, events); nil != err {
		return fmt.Errorf("unable to open input device %v: %w", *config.Keyboard, err)
	}

	if err := eng.Start(); nil != err {
		return err
	}

	if err := r.Init(); nil != err {
		return err
	}
	defer r.Deinit()

	// Project engine position units onto terminal rows.
	scale := float64(rows) / engine.FieldExtent
	rowFor := func(y float64) int {
		return int(y * scale)
	}
	hitRow := rowFor(engine.JudgmentLine)

	mc := columns >> 1
	cen := rows >> 1
	spacing := int(*config.Spacing)
	cis := [game.NLanes]int{
		mc - spacing*3,
		mc - spacing,
		mc + spacing,
		mc + spacing*3,
	}
	sideCol := cis[0] - 30
	if sideCol < 2 {
		sideCol = 2
	}

	aborted := false
	drawn := []cell{}

	r.RenderLoop(*config.FramePeriod, func() bool {
		// Input is fully drained before the tick.
		for i := 0; i < len(events); i++ {
			ev := <-events
			if ev.Code == input.CodeEsc && ev.Pressed {
				aborted = true
				return false
			}
			lane := config.KeyLane(ev.Code)
			if lane < 0 {
				continue
			}
			if ev.Pressed {
				eng.OnLanePress(lane)
			} else if ev.Released {
				eng.OnLaneRelease(lane)
			}
		}

		eng.Update()

		// Erase the previous frame's notes, then draw the new ones.
		for _, c := range drawn {
			r.Fill(c.row, c.col, " ")
		}
		drawn = drawn[:0]
		draw := func(row, col int, content string) {
			if row < 1 || row > rows {
				return
			}
			r.Fill(row, col, content)
			drawn = append(drawn, cell{row: row, col: col})
		}

		// Hit field first, pressed lanes highlighted; notes draw on top
		for _, lane := range eng.Lanes() {
			r.Fill(hitRow, cis[lane.Index], th.RenderHitField(lane.Index, lane.Pressed))
		}

		for _, n := range eng.Notes() {
			col := cis[n.Lane]
			switch n.Kind {
			case game.Normal:
				draw(rowFor(n.Y), col, th.RenderNote(n.Lane))
			case game.Hold:
				headRow := rowFor(n.HeadY())
				tailRow := rowFor(n.TailY())
				for row := tailRow + 1; row < headRow; row++ {
					draw(row, col, th.RenderHoldBody(n.Lane, n.Held))
				}
				draw(tailRow, col, th.RenderHoldCap(n.Lane))
				draw(headRow, col, th.RenderNote(n.Lane))
			}
		}

		// Judgment text, centered, blanked when its timer runs out
		r.Fill(cen, mc-4, "        ")
		if display.Visible() {
			r.Fill(cen, mc-4, th.RenderJudgement(display.Tier()))
		}

		// Session stats
		r.Fill(2, sideCol, fmt.Sprintf("    Score:  %8v", ledger.Score))
		r.Fill(3, sideCol, fmt.Sprintf("    Combo:  %8v", ledger.Combo))
		r.Fill(4, sideCol, fmt.Sprintf("Max Combo:  %8v", ledger.MaxCombo))
		r.Fill(6, sideCol, fmt.Sprintf("    Notes:  %8v", chart.NoteCount))
		for t, count := range eng.Counts() {
			r.Fill(8+t, sideCol, fmt.Sprintf("%9v:  %6v", game.Judgements[t].Name, count))
		}

		return !eng.Done()
	})

	if err := r.Deinit(); nil != err {
		log.Println("unable to restore terminal:", err)
	}

	// An aborted session is discarded, not scored or saved.
	if aborted {
		return nil
	}

	st.Save(chart, eng.Inputs())
	previous := st.Load(chart)

	fmt.Printf("%v [%v]\n", chart.Title, chart.Difficulty)
	fmt.Printf("    Score:  %8v\n", ledger.Score)
	fmt.Printf("Max Combo:  %8v\n", ledger.MaxCombo)
	for t, count := range eng.Counts() {
		fmt.Printf("%9v:  %6v\n", game.Judgements[t].Name, count)
	}
	fmt.Printf("    Plays:  %8v\n", len(previous))

	_ = <-keyChannel
	return nil
}
