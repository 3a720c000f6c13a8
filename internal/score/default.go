package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"

	"git.lost.host/meutraa/fall/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	db *sql.DB
}

// InputsCompact groups one lane's press and release frames, a denser
// encoding than the flat event list.
type InputsCompact struct {
	Lane     int
	Presses  []uint64
	Releases []uint64
}

func compactInputs(inputs []game.Input) []InputsCompact {
	laneCount := 0
	for _, in := range inputs {
		if in.Lane >= laneCount {
			laneCount = in.Lane + 1
		}
	}
	cs := make([]InputsCompact, laneCount)
	for _, in := range inputs {
		c := &cs[in.Lane]
		c.Lane = in.Lane // Repeated but it does not matter
		if in.Press {
			c.Presses = append(c.Presses, in.Frame)
		} else {
			c.Releases = append(c.Releases, in.Frame)
		}
	}
	return cs
}

// uncompactInputs merges each lane's press and release frames back into
// event order, presses winning frame ties. Events come out grouped by
// lane, which is all replay application needs.
func uncompactInputs(cs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, c := range cs {
		p, r := 0, 0
		for p < len(c.Presses) || r < len(c.Releases) {
			if r >= len(c.Releases) || (p < len(c.Presses) && c.Presses[p] <= c.Releases[r]) {
				ins = append(ins, game.Input{Lane: c.Lane, Frame: c.Presses[p], Press: true})
				p++
			} else {
				ins = append(ins, game.Input{Lane: c.Lane, Frame: c.Releases[r], Press: false})
				r++
			}
		}
	}
	return ins
}

func (s *DefaultStore) Init() error {
	db, err := sql.Open("sqlite3", "./replays.db")
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  sum text,
		  inputs bytearray
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultStore) hashChart(c *game.Chart) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%v:%v:%v", c.Title, c.Difficulty, c.NoteCount)))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultStore) Save(c *game.Chart, inputs []game.Input) {
	if nil == s.db {
		return
	}
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		log.Println("unable to marshal inputs", err)
		return
	}
	_, err = s.db.Exec("insert into replays(sum, inputs) values(?, ?)", s.hashChart(c), data)
	if nil != err {
		log.Println("unable to save replay")
		return
	}
}

func (s *DefaultStore) Load(c *game.Chart) []Replay {
	replays := []Replay{}
	if nil == s.db {
		return replays
	}
	rows, err := s.db.Query("select sum, inputs from replays where sum = ?", s.hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load replays", err)
		return replays
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var data []byte
		rows.Scan(&sum, &data)
		var cs []InputsCompact
		if err := json.Unmarshal(data, &cs); nil != err {
			log.Println("unable to unmarshal replay")
			continue
		}
		replays = append(replays, Replay{
			Sum:    sum,
			Inputs: uncompactInputs(cs),
		})
	}
	return replays
}
