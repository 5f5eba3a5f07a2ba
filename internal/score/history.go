package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

// Replays are stored as raw inputs keyed by a hash of the chart content,
// never as scores. Loading one re-judges it through Replay.

type InputsCompact struct {
	Lane  int
	Times []time.Duration
}

func compactInputs(inputs []game.Input) []InputsCompact {
	laneCount := 0
	for _, i := range inputs {
		if int(i.Lane) >= laneCount {
			laneCount = int(i.Lane) + 1
		}
	}
	ins := make([]InputsCompact, laneCount)
	for i := range ins {
		ins[i].Lane = i
	}
	for _, i := range inputs {
		ins[i.Lane].Times = append(ins[i.Lane].Times, i.Time)
	}
	return ins
}

func uncompactInputs(inputs []InputsCompact) []game.Input {
	ins := []game.Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, game.Input{Lane: uint8(i.Lane), Time: t})
		}
	}
	return ins
}

func (s *DefaultScorer) Init() error {
	if s.path == "" {
		s.path = "./replays.db"
	}
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  inputs bytearray
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func hashChart(c *game.Chart) string {
	h := sha256.New()
	for _, note := range c.Notes {
		h.Write([]byte(strconv.FormatInt(int64(note.Lane), 10)))
		h.Write([]byte(strconv.FormatInt(note.Time.Nanoseconds(), 10)))
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) Save(c *game.Chart, inputs []game.Input, rate float64) {
	if nil == s.db {
		return
	}
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		log.Println("unable to marshal inputs", err)
		return
	}
	_, err = s.db.Exec("insert into replays(sum, rate, inputs) values(?, ?, ?)", hashChart(c), rate, data)
	if nil != err {
		log.Println("unable to save replay", err)
		return
	}
}

func (s *DefaultScorer) Load(c *game.Chart) []History {
	histories := []History{}
	if nil == s.db {
		return histories
	}
	rows, err := s.db.Query("select sum, rate, inputs from replays where sum = ?", hashChart(c))
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load replays", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var blob []byte
		var rate float64
		if err := rows.Scan(&sum, &rate, &blob); nil != err {
			log.Println("unable to scan replay row", err)
			continue
		}
		var ins []InputsCompact
		if err := json.Unmarshal(blob, &ins); nil != err {
			log.Println("unable to unmarshal replay inputs")
			continue
		}
		histories = append(histories, History{
			Sum:    sum,
			Inputs: uncompactInputs(ins),
			Rate:   rate,
		})
	}
	if err := rows.Err(); nil != err {
		log.Println("unable to read replay rows", err)
	}
	return histories
}
