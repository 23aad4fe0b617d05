package core

const defaultPollHistoryCapacity = 100

// pollHistory is a fixed-capacity ring buffer of recent poll records. Like
// the queues it is single-writer and unsynchronized.
type pollHistory struct {
	items []PollRecord
	head  int
	count int
}

func newPollHistory(capacity int) pollHistory {
	if capacity < 1 {
		capacity = defaultPollHistoryCapacity
	}
	return pollHistory{items: make([]PollRecord, capacity)}
}

func (h *pollHistory) add(record PollRecord) {
	if len(h.items) == 0 {
		return
	}

	h.items[h.head] = record
	h.head = (h.head + 1) % len(h.items)
	if h.count < len(h.items) {
		h.count++
	}
}

// recent returns up to limit records, newest first. limit <= 0 means all.
func (h *pollHistory) recent(limit int) []PollRecord {
	if h.count == 0 {
		return nil
	}

	if limit <= 0 || limit > h.count {
		limit = h.count
	}

	out := make([]PollRecord, 0, limit)
	for i := range limit {
		idx := (h.head - 1 - i + len(h.items)) % len(h.items)
		out = append(out, h.items[idx])
	}
	return out
}

func (h *pollHistory) last() (PollRecord, bool) {
	if h.count == 0 {
		return PollRecord{}, false
	}

	idx := (h.head - 1 + len(h.items)) % len(h.items)
	return h.items[idx], true
}
