package parser

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"git.lost.host/meutraa/fall/internal/game"
)

type DefaultParser struct{}

// Chart files are plain text:
//
//	#TITLE: song name;
//	#CHART: difficulty name;
//	lane offset [length]
//	...
//
// One note per line, lane 0-3 left to right, offset in position units
// above the field (larger = later), a third field makes it a hold of that
// length. Lines starting with // are comments. A file may carry several
// #CHART sections for the same song.
func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart file: %w", err)
	}
	return p.ParseData(file, data)
}

func (p *DefaultParser) ParseData(name string, data []byte) ([]*game.Chart, error) {
	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.Split(str, "#CHART:")

	title := ""
	for _, line := range strings.Split(sections[0], "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#TITLE:") {
			title = strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(line, "#TITLE:")), ";")
		}
	}

	charts := []*game.Chart{}
	for _, section := range sections[1:] {
		lines := strings.Split(section, "\n")
		difficulty := strings.TrimSuffix(strings.TrimSpace(lines[0]), ";")

		notes := []*game.Note{}
		holdCount := int64(0)
		for i, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 || len(fields) > 3 {
				return nil, fmt.Errorf("chart %q line %v: want `lane offset [length]`, have %q", difficulty, i+2, line)
			}
			lane, err := strconv.Atoi(fields[0])
			if nil != err || lane < 0 || lane >= game.NLanes {
				return nil, fmt.Errorf("chart %q line %v: bad lane %q", difficulty, i+2, fields[0])
			}
			offset, err := strconv.ParseFloat(fields[1], 64)
			if nil != err {
				return nil, fmt.Errorf("chart %q line %v: bad offset %q", difficulty, i+2, fields[1])
			}
			note := &game.Note{Lane: lane, Y: -offset}
			if len(fields) == 3 {
				length, err := strconv.ParseFloat(fields[2], 64)
				if nil != err || length <= 0 {
					return nil, fmt.Errorf("chart %q line %v: bad hold length %q", difficulty, i+2, fields[2])
				}
				note.Kind = game.Hold
				note.Length = length
				holdCount++
			}
			notes = append(notes, note)
		}
		if len(notes) == 0 {
			return nil, fmt.Errorf("chart %q has no notes", difficulty)
		}

		charts = append(charts, &game.Chart{
			Title:      title,
			Difficulty: difficulty,
			Notes:      notes,
			NoteCount:  int64(len(notes)),
			HoldCount:  holdCount,
		})
	}

	if len(charts) == 0 {
		return nil, fmt.Errorf("no #CHART sections in %v", name)
	}
	return charts, nil
}
