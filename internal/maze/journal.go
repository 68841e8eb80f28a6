package maze

import (
	"fmt"
	"strings"
)

// JournalEntry is one recorded event during a solve run. Actions are
// "expand" (a cell popped and recorded), "relax" (a weighted variant
// found a cheaper route to a queued cell) and "done" (the run ended,
// detail "found" or "frontier exhausted").
type JournalEntry struct {
	Step     int    // 1-based expansion count at the time of the event
	Action   string
	Cell     Cell
	Frontier int    // queued entries after the event, stale included
	Detail   string // human-readable extra, may be empty
}

// String formats the entry as a fixed-width log line.
//
//	[S=042] expand  (3,12)    frontier=7
func (e JournalEntry) String() string {
	return fmt.Sprintf("[S=%03d] %-7s %-9s frontier=%-4d %s",
		e.Step, e.Action, e.Cell, e.Frontier, e.Detail)
}

// Journal collects structured events during a solve run. It is
// unbounded and machine-readable, meant for verbose report output and
// tests rather than the animation path.
type Journal struct {
	alg     Algorithm
	entries []JournalEntry
}

// NewJournal creates an empty journal for a run of a.
func NewJournal(a Algorithm) *Journal {
	return &Journal{alg: a}
}

// Algorithm returns the variant the journal belongs to.
func (j *Journal) Algorithm() Algorithm { return j.alg }

func (j *Journal) add(step int, action string, c Cell, frontier int, detail string) {
	j.entries = append(j.entries, JournalEntry{
		Step:     step,
		Action:   action,
		Cell:     c,
		Frontier: frontier,
		Detail:   detail,
	})
}

// Entries returns all recorded entries.
func (j *Journal) Entries() []JournalEntry {
	return j.entries
}

// Filter returns entries matching the given action; the empty string
// matches every action.
func (j *Journal) Filter(action string) []JournalEntry {
	var out []JournalEntry
	for _, e := range j.entries {
		if action != "" && e.Action != action {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match the given action.
func (j *Journal) Count(action string) int {
	return len(j.Filter(action))
}

// Last returns the most recent entry matching action, or false if none.
func (j *Journal) Last(action string) (JournalEntry, bool) {
	entries := j.Filter(action)
	if len(entries) == 0 {
		return JournalEntry{}, false
	}
	return entries[len(entries)-1], true
}

// Format returns the full journal as a single string.
func (j *Journal) Format() string {
	var sb strings.Builder
	for _, e := range j.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
