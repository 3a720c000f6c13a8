package testdata

import (
	"git.lost.host/meutraa/fall/internal/game"
	"git.lost.host/meutraa/fall/internal/parser"
)

// Source is a small fixture chart in the plain text format.
const Source = `#TITLE: fixture;

#CHART: simple;
0 0
1 150
2 270
3 420
1 540 120

#CHART: holds;
0 0 100
3 200 60
2 350
`

func GetCharts() ([]*game.Chart, error) {
	p := parser.DefaultParser{}
	return p.ParseData("fixture.fc", []byte(Source))
}

func GetChart() (*game.Chart, error) {
	charts, err := GetCharts()
	if nil != err {
		return nil, err
	}
	return charts[0], nil
}
