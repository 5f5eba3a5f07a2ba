package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/pulse/internal/clock"
	"git.lost.host/meutraa/pulse/internal/config"
	"git.lost.host/meutraa/pulse/internal/engine"
	"git.lost.host/meutraa/pulse/internal/game"
	"git.lost.host/meutraa/pulse/internal/input"
	"git.lost.host/meutraa/pulse/internal/parser"
	"git.lost.host/meutraa/pulse/internal/render"
	"git.lost.host/meutraa/pulse/internal/score"
	"git.lost.host/meutraa/pulse/internal/theme"
	"golang.org/x/term"
)

func main() {
	config.Init()
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// stats accumulates the session error statistics shown in the sidebar.
type stats struct {
	counts    map[string]int
	totalHits float64
	sum       float64 // signed error, ms
	sumSq     float64
}

func (s *stats) record(diff time.Duration) {
	ms := float64(diff) / float64(time.Millisecond)
	s.totalHits++
	s.sum += ms
	s.sumSq += ms * ms
}

func (s *stats) mean() float64 {
	if s.totalHits == 0 {
		return 0
	}
	return s.sum / s.totalHits
}

func (s *stats) stdev() float64 {
	if s.totalHits < 2 {
		return 0
	}
	m := s.mean()
	return math.Sqrt((s.sumSq - s.totalHits*m*m) / (s.totalHits - 1))
}

func newStats() *stats {
	return &stats{counts: map[string]int{}}
}

func isRowInField(rows, row int) bool {
	return row > 0 && row < rows
}

func run() error {
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}

	keyChannel, closeKeys, err := input.Open(128)
	if nil != err {
		return err
	}
	defer closeKeys()

	var audioFile, chartFile string
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3", ".ogg":
			audioFile = p
		case ".json":
			chartFile = p
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}

	var chart *game.Chart
	if chartFile != "" {
		chart, err = psr.Parse(chartFile)
		if nil != err {
			return err
		}
	} else {
		chart = parser.Demo(120, 16, *config.Seed)
	}
	if len(chart.Notes) == 0 {
		return fmt.Errorf("chart %v has no notes", chartFile)
	}

	var clk clock.Clock
	if audioFile != "" {
		log.Printf("Opening %v (%v)\n", audioFile, chartFile)
		spk, err := clock.Open(audioFile, *config.Rate, *config.Offset)
		if nil != err {
			return err
		}
		defer spk.Close()
		clk = spk
	} else {
		clk = &clock.Wall{Length: chart.LastNoteTime(), Rate: *config.Rate}
	}

	scorer := score.NewDefaultScorer(*config.Seed)
	if err := scorer.Init(); nil != err {
		return fmt.Errorf("unable to open replay store: %w", err)
	}
	defer scorer.Deinit()

	eng := engine.New(clk, scorer)
	if err := eng.Load(chart); nil != err {
		return err
	}

	for _, h := range scorer.Load(chart) {
		prev := scorer.Replay(chart, &h)
		log.Printf("previous run: score %v combo %v (rate %v)\n", prev.Score, prev.Combo, h.Rate)
	}

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	if err := eng.Start(); nil != err {
		return err
	}

	mc := columns >> 1
	spacing := int(*config.ColumnSpacing)
	laneCols := [game.NumLanes]int{mc - spacing, mc, mc + spacing}
	hitRow := rows - int(*config.BarRow)
	sideCol := laneCols[0] - 36
	if sideCol < 2 {
		sideCol = 2
	}

	st := newStats()
	frames := int(math.Round(*config.RefreshRate / 10)) // popup lifetime, ~100ms

	noteRows := map[int64]int{}
	saved := false

	r.Loop(func(now time.Time) bool {
		// Drain the key inputs that occured so far
		for i := 0; i < len(keyChannel); i++ {
			key := <-keyChannel
			if nil != key.Err {
				return false
			}
			ev := input.Map(key)
			if ev.Quit {
				return false
			}
			if ev.Restart {
				if err := eng.Restart(); nil != err {
					log.Println("unable to restart:", err)
					continue
				}
				st = newStats()
				noteRows = map[int64]int{}
				saved = false
				r.Fill(1, 1, "\033[2J")
				continue
			}
			if ev.Lane < 0 {
				continue
			}
			result := eng.HandleLane(uint8(ev.Lane))
			if nil == result {
				continue
			}
			st.record(result.Diff)
			st.counts[result.Judgement.Name]++
			col := laneCols[result.Lane]
			r.AddDecoration(col-len(result.Judgement.Name)/2, hitRow-2,
				colorizeName(th, result.Judgement.Name), frames)
			if result.Bloom {
				c := th.JudgementColor(result.Judgement.Name)
				bloom := fmt.Sprintf("\033[38;2;%v;%v;%vm✿\033[0m", c.R, c.G, c.B)
				r.AddDecoration(col-1, hitRow-1, bloom, frames*2)
				r.AddDecoration(col+1, hitRow-1, bloom, frames*2)
			}
		}

		eng.Tick()
		snap := eng.Snapshot()

		for _, note := range eng.Swept() {
			st.counts[config.Miss.Name]++
			col := laneCols[note.Lane]
			r.AddDecoration(col-1, hitRow-1, "\033[1;31m╭\033[0m", frames)
			r.AddDecoration(col+1, hitRow-1, "\033[1;31m╮\033[0m", frames)
			r.AddDecoration(col-1, hitRow, "\033[1;31m╰\033[0m", frames)
			r.AddDecoration(col+1, hitRow, "\033[1;31m╯\033[0m", frames)
		}

		// Render the hit bar, flashing lanes that were just pressed
		for lane := uint8(0); lane < game.NumLanes; lane++ {
			r.Fill(hitRow, laneCols[lane], th.RenderHitField(lane, snap.Lanes[lane]))
		}

		// Render notes at rows derived from their distance to the hit bar
		for _, note := range eng.Chart().Notes {
			if prev, ok := noteRows[note.ID]; ok && isRowInField(rows, prev) {
				r.Fill(prev, laneCols[note.Lane], " ")
			}
			distance := int(math.Round(float64((note.Time - snap.Time).Milliseconds()) / config.ScrollSpeed))
			row := hitRow - distance
			noteRows[note.ID] = row
			if !note.Resolved() && isRowInField(rows, row) && row <= hitRow {
				r.Fill(row, laneCols[note.Lane], th.RenderNote(note.Lane))
			}
		}

		renderSidebar(r, th, snap, st, sideCol, eng.Chart())

		if snap.Phase == game.PhaseFinished {
			if !saved {
				// Song over, persist the replay once
				scorer.Save(chart, eng.Inputs(), *config.Rate)
				saved = true
			}
			r.Fill(rows/2-1, mc-5, "SONG CLEAR")
			r.Fill(rows/2, mc-8, fmt.Sprintf("score %8v", snap.Score))
			r.Fill(rows/2+1, mc-12, "space restarts, esc quits")
		}
		return true
	})

	return nil
}

func colorizeName(th theme.Theme, name string) string {
	c := th.JudgementColor(name)
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, name)
}

func renderSidebar(r render.Renderer, th theme.Theme, snap game.Snapshot, st *stats, sideCol int, chart *game.Chart) {
	tc := th.TierColor(snap.Tier)
	if chart.Name != "" {
		r.Fill(1, sideCol, fmt.Sprintf("     Track:  %v", chart.Name))
	}
	r.FillColor(2, sideCol, tc, fmt.Sprintf("      Tier:  %6v", snap.Tier))
	r.Fill(3, sideCol, fmt.Sprintf("     Score:  %6v", snap.Score))
	r.Fill(4, sideCol, fmt.Sprintf("     Combo:  %6v", snap.Combo))
	r.Fill(5, sideCol, fmt.Sprintf("      Heat:  %s", th.RenderHeatBar(snap.Heat, 20)))
	if snap.Time < 0 {
		r.Fill(7, sideCol, fmt.Sprintf("  Starting:  %5.1fs", -snap.Time.Seconds()))
	} else {
		r.Fill(7, sideCol, fmt.Sprintf("      Time:  %5.1fs", snap.Time.Seconds()))
	}
	r.Fill(8, sideCol, fmt.Sprintf("     Phase:  %8v", snap.Phase))
	r.Fill(10, sideCol, fmt.Sprintf("      Mean:  %6.2f ms", st.mean()))
	r.Fill(11, sideCol, fmt.Sprintf("     Stdev:  %6.2f ms", st.stdev()))
	r.Fill(12, sideCol, fmt.Sprintf("     Notes:  %6v", len(chart.Notes)))
	r.Fill(13, sideCol, fmt.Sprintf(" Remaining:  %6v", chart.Unresolved()))
	for i, name := range []string{"BLOOM", "PERFECT", "GREAT", "MISS"} {
		r.FillColor(16+i, sideCol, th.JudgementColor(name),
			fmt.Sprintf("%10v:  %6v", name, st.counts[name]))
	}
}
