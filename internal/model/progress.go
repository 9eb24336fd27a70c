package model

import "fmt"

// ProgressRecord is one display-ready snapshot of download progress.
// Records are value objects: the consumer owns a record once emitted and it
// is never mutated afterwards.
type ProgressRecord struct {
	Status     DownloadStatus
	Downloaded int64
	Total      int64   // 0 when unknown
	Speed      float64 // bytes per second, negative when unknown
	ETASec     int     // seconds, negative when unknown
	Percent    float64 // clamped to [0, 100]
	Filename   string
	Elapsed    float64 // seconds since the current file started
}

// SpeedString returns the speed formatted for display, or "-- KB/s" if unknown
func (pr ProgressRecord) SpeedString() string {
	if pr.Speed < 0 {
		return "-- KB/s"
	}
	return FormatSpeed(pr.Speed)
}

// ETAString returns the ETA formatted as mm:ss or hh:mm:ss, or "--:--" if unknown
func (pr ProgressRecord) ETAString() string {
	if pr.ETASec < 0 {
		return "--:--"
	}
	return FormatETA(pr.ETASec)
}

// SizeString returns "downloaded / total", or just the downloaded size when
// the total is unknown
func (pr ProgressRecord) SizeString() string {
	downloaded := FormatSize(pr.Downloaded)
	if pr.Total > 0 {
		return downloaded + " / " + FormatSize(pr.Total)
	}
	return downloaded
}

// FormatSpeed formats a transfer rate in B/s, KB/s or MB/s
func FormatSpeed(bytesPerSec float64) string {
	switch {
	case bytesPerSec < 1024:
		return fmt.Sprintf("%.0f B/s", bytesPerSec)
	case bytesPerSec < 1024*1024:
		return fmt.Sprintf("%.1f KB/s", bytesPerSec/1024)
	default:
		return fmt.Sprintf("%.2f MB/s", bytesPerSec/(1024*1024))
	}
}

// FormatETA formats seconds as mm:ss, or hh:mm:ss once it reaches an hour
func FormatETA(seconds int) string {
	if seconds < 0 {
		return "--:--"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatSize formats a byte count as B, KB, MB or GB
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(size)/(1024*1024*1024))
	}
}
