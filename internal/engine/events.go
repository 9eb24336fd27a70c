package engine

// EventStatus is the status tag carried by a raw engine event
type EventStatus string

const (
	EventDownloading EventStatus = "downloading"
	EventProcessing  EventStatus = "processing"
	EventFinished    EventStatus = "finished"
	EventError       EventStatus = "error"
)

// Event is one raw progress callback payload from the engine, before
// normalization. Unknown numeric fields are negative (speed, ETA) or zero
// (total bytes).
type Event struct {
	Status          EventStatus
	Filename        string
	DownloadedBytes int64
	TotalBytes      int64
	Speed           float64 // bytes per second, negative when unknown
	ETASec          int     // seconds, negative when unknown
	PercentText     string  // engine-reported percent, e.g. "42.1%", may be empty
}
