package progress

import (
	"strconv"
	"strings"
	"time"

	"github.com/fetchtube/fetchtube/internal/engine"
	"github.com/fetchtube/fetchtube/internal/model"
)

// emitInterval caps emission during a Downloading sequence; intermediate
// events inside the window are dropped, not queued.
const emitInterval = 100 * time.Millisecond

// Normalizer reshapes raw engine events into ProgressRecords and delivers
// them to a callback. It is stateful across one operation: elapsed time is
// measured from the first Downloading event since the last reset, and the
// Finished event clears that clock so multi-file operations (e.g. separate
// video and audio legs) each start fresh.
//
// Call Reset before reusing a normalizer for an unrelated operation.
type Normalizer struct {
	emit func(model.ProgressRecord)

	startedAt   time.Time // zero until the first Downloading event
	currentFile string
	lastEmit    time.Time

	now func() time.Time // injected in tests
}

// NewNormalizer creates a normalizer delivering records to emit
func NewNormalizer(emit func(model.ProgressRecord)) *Normalizer {
	return &Normalizer{
		emit: emit,
		now:  time.Now,
	}
}

// Handle processes one raw event. Events with unrecognized status tags are
// ignored.
func (n *Normalizer) Handle(ev engine.Event) {
	switch ev.Status {
	case engine.EventDownloading:
		n.handleDownloading(ev)
	case engine.EventProcessing:
		n.handleProcessing(ev)
	case engine.EventFinished:
		n.handleFinished(ev)
	case engine.EventError:
		n.handleError()
	}
}

// Reset clears all state so the normalizer can serve a new operation without
// leaking the previous file name or elapsed clock.
func (n *Normalizer) Reset() {
	n.startedAt = time.Time{}
	n.currentFile = ""
	n.lastEmit = time.Time{}
}

func (n *Normalizer) handleDownloading(ev engine.Event) {
	now := n.now()

	if !n.lastEmit.IsZero() && now.Sub(n.lastEmit) < emitInterval {
		return
	}
	n.lastEmit = now

	if n.startedAt.IsZero() {
		n.startedAt = now
	}
	if ev.Filename != "" {
		n.currentFile = ev.Filename
	}

	percent := computePercent(ev)

	n.send(model.ProgressRecord{
		Status:     model.StatusDownloading,
		Downloaded: ev.DownloadedBytes,
		Total:      ev.TotalBytes,
		Speed:      ev.Speed,
		ETASec:     ev.ETASec,
		Percent:    percent,
		Filename:   n.currentFile,
		Elapsed:    now.Sub(n.startedAt).Seconds(),
	})
}

func (n *Normalizer) handleProcessing(ev engine.Event) {
	if ev.Filename != "" {
		n.currentFile = ev.Filename
	}
	n.send(model.ProgressRecord{
		Status:   model.StatusProcessing,
		Percent:  100,
		Speed:    -1,
		ETASec:   -1,
		Filename: n.currentFile,
	})
}

func (n *Normalizer) handleFinished(ev engine.Event) {
	filename := ev.Filename
	if filename == "" {
		filename = n.currentFile
	}

	var elapsed float64
	if !n.startedAt.IsZero() {
		elapsed = n.now().Sub(n.startedAt).Seconds()
	}

	n.send(model.ProgressRecord{
		Status:     model.StatusFinished,
		Downloaded: ev.TotalBytes,
		Total:      ev.TotalBytes,
		Speed:      -1,
		ETASec:     0,
		Percent:    100,
		Filename:   filename,
		Elapsed:    elapsed,
	})

	// Next file starts a fresh elapsed clock
	n.startedAt = time.Time{}
	n.lastEmit = time.Time{}
}

func (n *Normalizer) handleError() {
	n.send(model.ProgressRecord{
		Status:   model.StatusError,
		Speed:    -1,
		ETASec:   -1,
		Filename: n.currentFile,
	})
}

func (n *Normalizer) send(rec model.ProgressRecord) {
	if n.emit != nil {
		n.emit(rec)
	}
}

// computePercent derives a clamped percentage from byte counters, falling
// back to the engine's percent text and finally to 0.
func computePercent(ev engine.Event) float64 {
	var percent float64
	if ev.TotalBytes > 0 {
		percent = float64(ev.DownloadedBytes) / float64(ev.TotalBytes) * 100
	} else {
		percent = parsePercentText(ev.PercentText)
	}
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// parsePercentText parses strings like "42.1%"; any failure yields 0
func parsePercentText(text string) float64 {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	if trimmed == "" {
		return 0
	}
	percent, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return percent
}
