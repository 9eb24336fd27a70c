package progress

import (
	"testing"
	"time"

	"github.com/fetchtube/fetchtube/internal/engine"
	"github.com/fetchtube/fetchtube/internal/model"
)

// fakeClock lets tests step wall time deterministically
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestNormalizer() (*Normalizer, *fakeClock, *[]model.ProgressRecord) {
	var records []model.ProgressRecord
	n := NewNormalizer(func(rec model.ProgressRecord) {
		records = append(records, rec)
	})
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	n.now = clock.Now
	return n, clock, &records
}

func downloadingEvent(downloaded, total int64) engine.Event {
	return engine.Event{
		Status:          engine.EventDownloading,
		DownloadedBytes: downloaded,
		TotalBytes:      total,
		Speed:           -1,
		ETASec:          -1,
	}
}

func TestNormalizer_ThrottlesDownloadingEvents(t *testing.T) {
	n, clock, records := newTestNormalizer()

	n.Handle(downloadingEvent(100, 1000))
	clock.Advance(50 * time.Millisecond)
	n.Handle(downloadingEvent(200, 1000))

	if len(*records) != 1 {
		t.Fatalf("two events 50ms apart emitted %d records, expected 1", len(*records))
	}

	clock.Advance(60 * time.Millisecond)
	n.Handle(downloadingEvent(300, 1000))
	if len(*records) != 2 {
		t.Fatalf("event past the 100ms window emitted %d records, expected 2", len(*records))
	}
}

func TestNormalizer_PercentFromBytes(t *testing.T) {
	n, _, records := newTestNormalizer()

	n.Handle(downloadingEvent(250, 1000))
	if len(*records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(*records))
	}
	if got := (*records)[0].Percent; got != 25 {
		t.Errorf("percent = %f, expected 25", got)
	}
}

func TestNormalizer_PercentClampedAtHundred(t *testing.T) {
	n, _, records := newTestNormalizer()

	// downloaded > total must clamp to exactly 100
	n.Handle(downloadingEvent(1500, 1000))
	if got := (*records)[0].Percent; got != 100.0 {
		t.Errorf("percent = %f, expected exactly 100", got)
	}
}

func TestNormalizer_PercentTextFallback(t *testing.T) {
	tests := []struct {
		text     string
		expected float64
	}{
		{"42.5%", 42.5},
		{" 7% ", 7},
		{"100%", 100},
		{"150%", 100}, // clamped
		{"garbage", 0},
		{"", 0},
	}

	for _, test := range tests {
		n, _, records := newTestNormalizer()
		ev := downloadingEvent(0, 0)
		ev.PercentText = test.text
		n.Handle(ev)
		if got := (*records)[0].Percent; got != test.expected {
			t.Errorf("percent text %q -> %f, expected %f", test.text, got, test.expected)
		}
	}
}

func TestNormalizer_FinishedForcesCompletion(t *testing.T) {
	n, clock, records := newTestNormalizer()

	n.Handle(downloadingEvent(500, 1000))
	clock.Advance(5 * time.Second)
	n.Handle(engine.Event{Status: engine.EventFinished, TotalBytes: 1000, Filename: "clip.mp4"})

	if len(*records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(*records))
	}
	final := (*records)[1]
	if final.Status != model.StatusFinished {
		t.Errorf("status = %v, expected Finished", final.Status)
	}
	if final.Percent != 100 {
		t.Errorf("percent = %f, expected 100", final.Percent)
	}
	if final.Downloaded != 1000 || final.Total != 1000 {
		t.Errorf("bytes = %d/%d, expected 1000/1000", final.Downloaded, final.Total)
	}
	if final.ETASec != 0 {
		t.Errorf("eta = %d, expected 0", final.ETASec)
	}
	if final.Elapsed != 5 {
		t.Errorf("elapsed = %f, expected 5", final.Elapsed)
	}
}

func TestNormalizer_FinishedResetsElapsedClock(t *testing.T) {
	n, clock, records := newTestNormalizer()

	// First leg runs for 10 seconds, then finishes
	n.Handle(downloadingEvent(100, 100))
	clock.Advance(10 * time.Second)
	n.Handle(engine.Event{Status: engine.EventFinished, TotalBytes: 100})

	// The next leg must start a fresh clock, not carry 10s over
	clock.Advance(time.Second)
	n.Handle(downloadingEvent(1, 100))

	last := (*records)[len(*records)-1]
	if last.Elapsed != 0 {
		t.Errorf("elapsed after reset = %f, expected 0", last.Elapsed)
	}
}

func TestNormalizer_FinishedWithoutPriorDownloading(t *testing.T) {
	n, _, records := newTestNormalizer()

	// Must not panic, and elapsed reports 0
	n.Handle(engine.Event{Status: engine.EventFinished})

	if len(*records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(*records))
	}
	rec := (*records)[0]
	if rec.Percent != 100 || rec.Elapsed != 0 {
		t.Errorf("record = %+v, expected percent 100 and elapsed 0", rec)
	}
	if rec.Downloaded != 0 || rec.Total != 0 {
		t.Errorf("bytes = %d/%d, expected 0/0 when the engine reported no total", rec.Downloaded, rec.Total)
	}
}

func TestNormalizer_ErrorEvent(t *testing.T) {
	n, clock, records := newTestNormalizer()

	ev := downloadingEvent(10, 100)
	ev.Filename = "clip.mp4"
	n.Handle(ev)
	clock.Advance(time.Second)
	n.Handle(engine.Event{Status: engine.EventError})

	last := (*records)[len(*records)-1]
	if last.Status != model.StatusError {
		t.Errorf("status = %v, expected Error", last.Status)
	}
	if last.Downloaded != 0 || last.Percent != 0 {
		t.Errorf("error record = %+v, expected zero counts and percent", last)
	}
	if last.Filename != "clip.mp4" {
		t.Errorf("filename = %q, the current file must survive an error", last.Filename)
	}
}

func TestNormalizer_UnknownStatusIsNoOp(t *testing.T) {
	n, _, records := newTestNormalizer()
	n.Handle(engine.Event{Status: "resuming"})
	if len(*records) != 0 {
		t.Errorf("unknown status emitted %d records, expected none", len(*records))
	}
}

func TestNormalizer_Reset(t *testing.T) {
	n, clock, records := newTestNormalizer()

	ev := downloadingEvent(10, 100)
	ev.Filename = "old.mp4"
	n.Handle(ev)

	n.Reset()
	clock.Advance(time.Hour)

	n.Handle(downloadingEvent(1, 100))
	last := (*records)[len(*records)-1]
	if last.Filename != "" {
		t.Errorf("filename after reset = %q, expected no stale file", last.Filename)
	}
	if last.Elapsed != 0 {
		t.Errorf("elapsed after reset = %f, expected 0", last.Elapsed)
	}
}
