package models

import "fmt"

// HistoryCapacity is the number of measurements kept on screen
const HistoryCapacity = 3

// HistoryEntry records one recognized measurement.
type HistoryEntry struct {
	Timestamp string
	State     BladderState
}

func (e HistoryEntry) String() string {
	return fmt.Sprintf("%s - %s", e.Timestamp, e.State)
}

// HistoryBuffer is a fixed-capacity FIFO; pushing onto a full buffer drops the oldest entry.
// Not safe for concurrent use.
type HistoryBuffer struct {
	buf   [HistoryCapacity]HistoryEntry
	head  int // next write position
	count int
}

func NewHistoryBuffer() *HistoryBuffer {
	return &HistoryBuffer{}
}

// Push appends entry and reports whether an older entry was evicted.
func (h *HistoryBuffer) Push(entry HistoryEntry) bool {
	evicted := h.count == HistoryCapacity
	h.buf[h.head] = entry
	h.head = (h.head + 1) % HistoryCapacity
	if !evicted {
		h.count++
	}
	return evicted
}

// Entries returns a copy of the buffer, oldest first.
func (h *HistoryBuffer) Entries() []HistoryEntry {
	result := make([]HistoryEntry, h.count)
	start := (h.head - h.count + HistoryCapacity) % HistoryCapacity
	for i := 0; i < h.count; i++ {
		result[i] = h.buf[(start+i)%HistoryCapacity]
	}
	return result
}

// Lines renders every entry as "<timestamp> - <state>", oldest first.
func (h *HistoryBuffer) Lines() []string {
	entries := h.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return lines
}

func (h *HistoryBuffer) Len() int {
	return h.count
}
