package game

import (
	"sort"
	"time"
)

type Chart struct {
	Notes []*Note
	Name  string
}

// Finalize assigns ids in input order and establishes the ascending time
// order the scorer depends on. The sort is stable, so notes sharing a time
// keep their input order. Called once at load, never again.
func (c *Chart) Finalize() {
	for i, note := range c.Notes {
		note.ID = int64(i)
	}
	sort.SliceStable(c.Notes, func(i, j int) bool {
		return c.Notes[i].Time < c.Notes[j].Time
	})
}

func (c *Chart) LastNoteTime() time.Duration {
	if len(c.Notes) == 0 {
		return 0
	}
	return c.Notes[len(c.Notes)-1].Time
}

func (c *Chart) Reset() {
	for _, note := range c.Notes {
		note.Reset()
	}
}

// Unresolved counts the notes still in play.
func (c *Chart) Unresolved() int {
	count := 0
	for _, note := range c.Notes {
		if !note.Resolved() {
			count++
		}
	}
	return count
}
