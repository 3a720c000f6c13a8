package game

// Tier is a judgment accuracy class, best first.
type Tier uint8

const (
	Perfect Tier = iota
	Great
	Good
	Bad
	Miss
)

type Judgement struct {
	Within float64 // upper distance bound, exclusive
	Points int
	Name   string
}

var Judgements = [...]Judgement{
	Perfect: {Within: 15, Points: 300, Name: "PERFECT"},
	Great:   {Within: 30, Points: 200, Name: "GREAT"},
	Good:    {Within: 45, Points: 100, Name: "GOOD"},
	Bad:     {Within: HitWindow, Points: 50, Name: "BAD"},
	Miss:    {Within: -1, Points: 0, Name: "MISS"},
}

// Judge maps a head distance inside the hit window to a tier. Bounds are
// half-open below: a distance of exactly 15 is Great, not Perfect.
func Judge(distance float64) Tier {
	for t := Perfect; t < Bad; t++ {
		if distance < Judgements[t].Within {
			return t
		}
	}
	return Bad
}

// BreaksCombo reports whether the tier resets the combo counter.
func (t Tier) BreaksCombo() bool {
	return t == Bad || t == Miss
}

func (t Tier) String() string {
	return Judgements[t].Name
}
