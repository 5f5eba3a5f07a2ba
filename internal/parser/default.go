package parser

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
)

type DefaultParser struct{}

// A chart file is a JSON array. Each element is either a bare number of
// seconds or an object {"time": seconds, "lane": 0|1|2}. Lane defaults to
// center and is clamped rather than rejected, chart data is semi-trusted.
type rawNote struct {
	Time *float64 `json:"time"`
	Lane *int     `json:"lane"`
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	chart, err := p.ParseData(data)
	if nil != err {
		return nil, fmt.Errorf("%v: %w", file, err)
	}
	chart.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return chart, nil
}

func (p *DefaultParser) ParseData(data []byte) (*game.Chart, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); nil != err {
		return nil, fmt.Errorf("chart is not a JSON array: %w", err)
	}

	notes := make([]*game.Note, 0, len(raw))
	for i, entry := range raw {
		var seconds float64
		lane := 1
		if err := json.Unmarshal(entry, &seconds); nil != err {
			var rn rawNote
			if err := json.Unmarshal(entry, &rn); nil != err || nil == rn.Time {
				return nil, fmt.Errorf("chart entry %v is neither a number nor a note object", i)
			}
			seconds = *rn.Time
			if nil != rn.Lane {
				lane = *rn.Lane
			}
		}
		if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return nil, fmt.Errorf("chart entry %v has invalid time %v", i, seconds)
		}
		if lane < 0 || lane >= game.NumLanes {
			lane = 1
		}
		notes = append(notes, &game.Note{
			Lane: uint8(lane),
			Time: time.Duration(seconds * float64(time.Second)),
		})
	}

	chart := &game.Chart{Notes: notes}
	chart.Finalize()
	return chart, nil
}
