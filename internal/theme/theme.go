package theme

import "git.lost.host/meutraa/fall/internal/game"

type Theme interface {
	RenderNote(lane int) string
	RenderHoldBody(lane int, held bool) string
	RenderHoldCap(lane int) string
	RenderHitField(lane int, pressed bool) string
	RenderJudgement(t game.Tier) string
}
