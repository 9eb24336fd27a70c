package queue

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fetchtube/fetchtube/internal/model"
)

// Overrides are the per-item option overrides applied on top of the
// operation defaults. Zero values mean "use the default".
type Overrides struct {
	Quality       string `yaml:"quality"`
	Container     string `yaml:"container"`
	AudioOnly     bool   `yaml:"audio_only"`
	PlaylistItems string `yaml:"playlist_items"`
}

// Item is one queued download. Created Pending on enqueue; advanced to
// Finished or Error exactly once after its turn is taken from the cursor.
type Item struct {
	ID       string
	URL      string
	Options  Overrides
	Status   model.DownloadStatus
	Progress float64 // percent
}

// Queue is an ordered list of pending operations with a forward-only cursor.
// Not safe for concurrent use; a single consumer drives it at a time.
type Queue struct {
	items  []*Item
	cursor int
}

// New creates an empty queue
func New() *Queue {
	return &Queue{}
}

// Enqueue appends a new pending item and returns it
func (q *Queue) Enqueue(url string, opts Overrides) *Item {
	item := &Item{
		ID:      uuid.NewString(),
		URL:     url,
		Options: opts,
		Status:  model.StatusPending,
	}
	q.items = append(q.items, item)
	return item
}

// Next returns the item at the cursor and advances past it. The second
// return is false when nothing is pending. The cursor never moves backward.
func (q *Queue) Next() (*Item, bool) {
	if q.cursor >= len(q.items) {
		return nil, false
	}
	item := q.items[q.cursor]
	q.cursor++
	return item, true
}

// MarkComplete marks the most recently dispatched item Finished. No-op when
// nothing has been dispatched yet.
func (q *Queue) MarkComplete() {
	if q.cursor == 0 {
		return
	}
	item := q.items[q.cursor-1]
	item.Status = model.StatusFinished
	item.Progress = 100
}

// MarkError marks the most recently dispatched item Error. No-op when
// nothing has been dispatched yet.
func (q *Queue) MarkError() {
	if q.cursor == 0 {
		return
	}
	q.items[q.cursor-1].Status = model.StatusError
}

// OverallProgress returns finished items over total as a percentage, 0 for
// an empty queue.
func (q *Queue) OverallProgress() float64 {
	if len(q.items) == 0 {
		return 0
	}
	finished := 0
	for _, item := range q.items {
		if item.Status == model.StatusFinished {
			finished++
		}
	}
	return float64(finished) / float64(len(q.items)) * 100
}

// Len returns the total number of items, dispatched or not
func (q *Queue) Len() int {
	return len(q.items)
}

// HasPending reports whether any item remains ahead of the cursor
func (q *Queue) HasPending() bool {
	return q.cursor < len(q.items)
}

// Items returns the backing slice for display. Callers must not reorder it.
func (q *Queue) Items() []*Item {
	return q.items
}

// Clear drops all items and rewinds the cursor
func (q *Queue) Clear() {
	q.items = nil
	q.cursor = 0
}

// ProgressText returns a "dispatched/total" counter like "2/5"
func (q *Queue) ProgressText() string {
	return fmt.Sprintf("%d/%d", q.cursor, len(q.items))
}
