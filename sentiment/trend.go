package sentiment

import "sync"

// Tracker keeps a short, bounded rolling history of sentiment labels for
// trend detection. Entries beyond the window are discarded oldest-first;
// nothing is cached across turns beyond this window.
type Tracker struct {
	mu     sync.Mutex
	window int
	labels []Label
}

// NewTracker creates a tracker holding at most window labels.
func NewTracker(window int) *Tracker {
	if window < 1 {
		window = 1
	}
	return &Tracker{window: window}
}

// Record appends a label, evicting the oldest when the window is full.
func (t *Tracker) Record(label Label) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.labels = append(t.labels, label)
	if len(t.labels) > t.window {
		t.labels = t.labels[len(t.labels)-t.window:]
	}
}

// Trend returns the dominant label of the current window, Neutral on a tie
// or an empty window.
func (t *Tracker) Trend() Label {
	t.mu.Lock()
	defer t.mu.Unlock()
	counts := map[Label]int{}
	for _, l := range t.labels {
		counts[l]++
	}
	switch {
	case counts[Negative] > counts[Positive] && counts[Negative] > counts[Neutral]:
		return Negative
	case counts[Positive] > counts[Negative] && counts[Positive] > counts[Neutral]:
		return Positive
	default:
		return Neutral
	}
}

// Len reports how many labels the window currently holds.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.labels)
}
