package track

import "sort"

// history is a fixed-capacity FIFO window of snapped semitone values.
type history struct {
	vals    []int
	scratch []int
}

func newHistory(capacity int) *history {
	return &history{
		vals:    make([]int, 0, capacity),
		scratch: make([]int, 0, capacity),
	}
}

// push appends v, evicting the oldest value once the window is full.
func (h *history) push(v int) {
	if len(h.vals) == cap(h.vals) {
		copy(h.vals, h.vals[1:])
		h.vals[len(h.vals)-1] = v
		return
	}
	h.vals = append(h.vals, v)
}

func (h *history) len() int {
	return len(h.vals)
}

// median returns the middle value of the window. For even window lengths the
// two middle values are averaged with truncation toward zero.
func (h *history) median() int {
	h.scratch = h.scratch[:len(h.vals)]
	copy(h.scratch, h.vals)
	sort.Ints(h.scratch)

	mid := len(h.scratch) / 2
	if len(h.scratch)%2 == 1 {
		return h.scratch[mid]
	}
	return (h.scratch[mid-1] + h.scratch[mid]) / 2
}

// trend reports the direction of motion across the window as -1, 0 or +1.
// The mean of successive differences telescopes to (last-first)/(n-1), so
// only the endpoints decide the sign.
func (h *history) trend() int {
	if len(h.vals) < 3 {
		return 0
	}
	diff := h.vals[len(h.vals)-1] - h.vals[0]
	switch {
	case diff > 0:
		return 1
	case diff < 0:
		return -1
	default:
		return 0
	}
}

func (h *history) reset() {
	h.vals = h.vals[:0]
}
