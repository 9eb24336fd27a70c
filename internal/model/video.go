package model

import "strings"

// VideoType classifies what kind of content a URL points at
type VideoType string

const (
	TypeVideo    VideoType = "video"
	TypeShort    VideoType = "short"
	TypePlaylist VideoType = "playlist"
	TypeUnknown  VideoType = "unknown"
)

// DetectVideoType classifies a URL by its shape alone. The shape decides the
// output template, so it wins even when the extracted metadata disagrees
// (e.g. a shortened link that resolves to a playlist).
func DetectVideoType(url string) VideoType {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "/shorts/"):
		return TypeShort
	case strings.Contains(lower, "list="):
		return TypePlaylist
	case strings.Contains(lower, "youtube.com/watch") || strings.Contains(lower, "youtu.be/"):
		return TypeVideo
	default:
		return TypeUnknown
	}
}

// VideoInfo is the metadata extracted by a probe, without downloading
type VideoInfo struct {
	URL       string
	Title     string
	Duration  int // seconds
	Thumbnail string
	Uploader  string
	Type      VideoType
	Streams   []StreamDescriptor
	IsLive    bool
	AgeLimit  int
}

// StreamDescriptor is one deliverable encoding advertised by the source, as
// reported in the engine's format list. Read-only input: classified, never
// mutated. Field tags match the engine's JSON keys.
type StreamDescriptor struct {
	FormatID       string  `json:"format_id"`
	Ext            string  `json:"ext"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	FPS            float64 `json:"fps"`
	Filesize       int64   `json:"filesize"`
	FilesizeApprox int64   `json:"filesize_approx"`
	VCodec         string  `json:"vcodec"`
	ACodec         string  `json:"acodec"`
	ABR            float64 `json:"abr"`
	Protocol       string  `json:"protocol"`
}

// HasVideo reports whether the stream carries a video track
func (sd StreamDescriptor) HasVideo() bool {
	return sd.VCodec != "" && sd.VCodec != "none"
}

// HasAudio reports whether the stream carries an audio track
func (sd StreamDescriptor) HasAudio() bool {
	return sd.ACodec != "" && sd.ACodec != "none"
}

// Size returns the exact file size when known, falling back to the estimate
func (sd StreamDescriptor) Size() int64 {
	if sd.Filesize > 0 {
		return sd.Filesize
	}
	return sd.FilesizeApprox
}

// FormatOption is a display-ready view of a StreamDescriptor. Created fresh
// per classification call and discarded after use by the presentation layer.
type FormatOption struct {
	FormatID    string
	Extension   string
	Resolution  string // "1920x1080", "1080p", or "" for audio-only streams
	FPS         float64
	Filesize    int64
	VCodec      string
	ACodec      string
	Quality     string // tier label, e.g. "1080p", or "Audio"
	IsVideo     bool
	IsAudio     bool
	Description string
}
