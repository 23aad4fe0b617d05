package core

const (
	defaultQueueCap     = 16
	compactMinCap       = 64 // Don't compact if capacity is less than this
	compactShrinkFactor = 4  // Trigger compaction when len < cap/4
)

// taskEntry pairs a scheduled task with the identity stamped at schedule
// time. Entries move between queues by value; the task itself is owned by
// exactly one queue at a time.
type taskEntry[T any] struct {
	id   TaskID
	task Task[T]
}

// taskQueue is an ordered sequence of owned tasks. It is not synchronized:
// the scheduling core is strictly single-threaded and every queue has a
// single writer.
type taskQueue[T any] struct {
	entries []taskEntry[T]
}

func newTaskQueue[T any]() *taskQueue[T] {
	return &taskQueue[T]{
		entries: make([]taskEntry[T], 0, defaultQueueCap),
	}
}

func (q *taskQueue[T]) push(e taskEntry[T]) {
	q.entries = append(q.entries, e)
}

func (q *taskQueue[T]) popFront() (taskEntry[T], bool) {
	if len(q.entries) == 0 {
		return taskEntry[T]{}, false
	}

	e := q.entries[0]
	// Zero out the element in the underlying array to release the task
	q.entries[0] = taskEntry[T]{}
	q.entries = q.entries[1:]
	q.maybeCompact()

	return e, true
}

// at returns the entry at index i without transferring ownership.
func (q *taskQueue[T]) at(i int) taskEntry[T] {
	return q.entries[i]
}

// removeAt removes and returns the entry at index i, preserving the order of
// the remaining entries.
func (q *taskQueue[T]) removeAt(i int) taskEntry[T] {
	e := q.entries[i]
	copy(q.entries[i:], q.entries[i+1:])
	q.entries[len(q.entries)-1] = taskEntry[T]{}
	q.entries = q.entries[:len(q.entries)-1]
	q.maybeCompact()
	return e
}

// drainInto appends every entry to dst in order and empties the queue,
// transferring ownership of all tasks.
func (q *taskQueue[T]) drainInto(dst *taskQueue[T]) {
	if len(q.entries) == 0 {
		return
	}
	dst.entries = append(dst.entries, q.entries...)
	q.clear()
}

func (q *taskQueue[T]) len() int {
	return len(q.entries)
}

func (q *taskQueue[T]) isEmpty() bool {
	return len(q.entries) == 0
}

// clear removes all entries and releases task references.
func (q *taskQueue[T]) clear() {
	q.entries = make([]taskEntry[T], 0, defaultQueueCap)
}

func (q *taskQueue[T]) maybeCompact() {
	n := len(q.entries)
	c := cap(q.entries)

	if c < compactMinCap {
		return
	}
	if n == 0 {
		q.entries = make([]taskEntry[T], 0, defaultQueueCap)
		return
	}
	if n*compactShrinkFactor >= c {
		return
	}

	newCap := max(max(c/2, defaultQueueCap), n)

	compacted := make([]taskEntry[T], n, newCap)
	copy(compacted, q.entries)
	q.entries = compacted
}
