package theme

import (
	"fmt"
	"image/color"

	"git.lost.host/meutraa/fall/internal/game"
)

type DefaultTheme struct{}

const (
	noteSym    = "⬤"
	holdSym    = "┃"
	holdHot    = "█"
	capSym     = "━"
	fieldSym   = "─"
	pressedSym = "═"
)

var laneColors = [game.NLanes]color.RGBA{
	{R: 236, G: 30, B: 0},
	{R: 0, G: 200, B: 60},
	{R: 0, G: 118, B: 236},
	{R: 236, G: 195, B: 0},
}

var tierColors = [len(game.Judgements)]color.RGBA{
	game.Perfect: {R: 236, G: 195, B: 0},
	game.Great:   {R: 0, G: 200, B: 60},
	game.Good:    {R: 0, G: 118, B: 236},
	game.Bad:     {R: 236, G: 30, B: 0},
	game.Miss:    {R: 236, G: 30, B: 0},
}

func colored(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return colored(laneColors[lane], noteSym)
}

func (t *DefaultTheme) RenderHoldBody(lane int, held bool) string {
	if held {
		return colored(laneColors[lane], holdHot)
	}
	return colored(laneColors[lane], holdSym)
}

func (t *DefaultTheme) RenderHoldCap(lane int) string {
	return colored(laneColors[lane], capSym)
}

func (t *DefaultTheme) RenderHitField(lane int, pressed bool) string {
	if pressed {
		return colored(laneColors[lane], pressedSym)
	}
	return fieldSym
}

func (t *DefaultTheme) RenderJudgement(tier game.Tier) string {
	return colored(tierColors[tier], game.Judgements[tier].Name)
}

// LaneColor is exposed for callers that render their own lane accents.
func LaneColor(lane int) color.RGBA {
	return laneColors[lane]
}
