package testdata

import (
	"encoding/json"
	"time"

	"git.lost.host/meutraa/pulse/internal/game"
)

// A small chart in the JSON wire format, one note roughly every half
// second across all three lanes.
const data = `[
	{"time": 1.0, "lane": 1},
	{"time": 1.5, "lane": 0},
	{"time": 2.0, "lane": 2},
	{"time": 2.5, "lane": 1},
	{"time": 3.0, "lane": 0},
	{"time": 3.0, "lane": 2},
	{"time": 3.5, "lane": 1},
	{"time": 4.0, "lane": 1},
	{"time": 4.25, "lane": 1},
	{"time": 5.0, "lane": 2},
	{"time": 6.0, "lane": 0},
	{"time": 7.5, "lane": 1}
]`

func Data() []byte {
	return []byte(data)
}

// GetChart builds the fixture without going through the parser, so parser
// tests can use it too.
func GetChart() (*game.Chart, error) {
	var raw []struct {
		Time float64 `json:"time"`
		Lane uint8   `json:"lane"`
	}
	if err := json.Unmarshal([]byte(data), &raw); nil != err {
		return nil, err
	}
	chart := &game.Chart{Name: "fixture"}
	for _, n := range raw {
		chart.Notes = append(chart.Notes, &game.Note{
			Lane: n.Lane,
			Time: time.Duration(n.Time * float64(time.Second)),
		})
	}
	chart.Finalize()
	return chart, nil
}
