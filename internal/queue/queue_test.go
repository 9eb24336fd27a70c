package queue

import (
	"testing"

	"github.com/fetchtube/fetchtube/internal/model"
)

func TestQueue_EnqueueAssignsIDAndPending(t *testing.T) {
	q := New()
	item := q.Enqueue("https://youtu.be/a", Overrides{Quality: "720p"})

	if item.ID == "" {
		t.Error("enqueued item has no ID")
	}
	if item.Status != model.StatusPending {
		t.Errorf("status = %v, expected Pending", item.Status)
	}
	if item.Options.Quality != "720p" {
		t.Errorf("quality = %q", item.Options.Quality)
	}
	if q.Len() != 1 || !q.HasPending() {
		t.Errorf("len = %d, hasPending = %v", q.Len(), q.HasPending())
	}
}

func TestQueue_NextAdvancesForwardOnly(t *testing.T) {
	q := New()
	a := q.Enqueue("https://youtu.be/a", Overrides{})
	b := q.Enqueue("https://youtu.be/b", Overrides{})

	first, ok := q.Next()
	if !ok || first != a {
		t.Fatalf("first = %v, ok = %v", first, ok)
	}
	second, ok := q.Next()
	if !ok || second != b {
		t.Fatalf("second = %v, ok = %v", second, ok)
	}
	if _, ok := q.Next(); ok {
		t.Error("Next on a drained queue must report false")
	}
	// Marking an item never rewinds the cursor
	q.MarkError()
	if _, ok := q.Next(); ok {
		t.Error("cursor moved backward after MarkError")
	}
}

func TestQueue_OverallProgress(t *testing.T) {
	q := New()
	q.Enqueue("https://youtu.be/a", Overrides{})
	q.Enqueue("https://youtu.be/b", Overrides{})
	q.Enqueue("https://youtu.be/c", Overrides{})

	q.Next()
	q.MarkComplete()
	q.Next()

	got := q.OverallProgress()
	if got < 33.3 || got > 33.4 {
		t.Errorf("overall progress = %f, expected one third", got)
	}

	items := q.Items()
	if items[0].Status != model.StatusFinished {
		t.Errorf("marked item status = %v, expected Finished", items[0].Status)
	}
	if items[0].Progress != 100 {
		t.Errorf("marked item progress = %f, expected 100", items[0].Progress)
	}
	if items[1].Status != model.StatusPending {
		t.Errorf("dispatched but unmarked item status = %v, expected Pending", items[1].Status)
	}
}

func TestQueue_OverallProgressEmpty(t *testing.T) {
	if got := New().OverallProgress(); got != 0 {
		t.Errorf("empty queue progress = %f, expected 0", got)
	}
}

func TestQueue_MarkBeforeDispatchIsNoOp(t *testing.T) {
	q := New()
	q.Enqueue("https://youtu.be/a", Overrides{})

	q.MarkComplete()
	q.MarkError()

	if got := q.Items()[0].Status; got != model.StatusPending {
		t.Errorf("status = %v, marks before dispatch must not apply", got)
	}
}

func TestQueue_ProgressText(t *testing.T) {
	q := New()
	q.Enqueue("https://youtu.be/a", Overrides{})
	q.Enqueue("https://youtu.be/b", Overrides{})

	if got := q.ProgressText(); got != "0/2" {
		t.Errorf("progress text = %q, expected 0/2", got)
	}
	q.Next()
	if got := q.ProgressText(); got != "1/2" {
		t.Errorf("progress text = %q, expected 1/2", got)
	}
}

func TestQueue_Clear(t *testing.T) {
	q := New()
	q.Enqueue("https://youtu.be/a", Overrides{})
	q.Next()

	q.Clear()
	if q.Len() != 0 || q.HasPending() {
		t.Errorf("after Clear: len = %d, hasPending = %v", q.Len(), q.HasPending())
	}
	if got := q.ProgressText(); got != "0/0" {
		t.Errorf("progress text = %q, expected 0/0", got)
	}
}
