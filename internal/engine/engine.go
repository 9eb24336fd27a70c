package engine

import (
	"context"

	"github.com/fetchtube/fetchtube/internal/model"
)

// Job describes one download operation for the engine
type Job struct {
	URL            string
	Format         string // fallback-ordered selection expression
	OutputTemplate string
	Container      string // target container (video) or codec (audio)
	AudioOnly      bool
	AudioQuality   string // preferred bitrate for audio extraction, e.g. "320"
	Playlist       bool
	PlaylistItems  string // engine range syntax, e.g. "1-5,7,9-10", passed through
}

// Engine is the external extraction/download boundary. Download blocks until
// the engine returns; onEvent is invoked synchronously from within that call.
type Engine interface {
	Probe(ctx context.Context, url string) (*model.VideoInfo, error)
	Download(ctx context.Context, job Job, onEvent func(Event)) error
}
