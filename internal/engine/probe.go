package engine

import (
	"encoding/json"
	"fmt"

	"github.com/fetchtube/fetchtube/internal/model"
)

// probePayload mirrors the fields of the engine's single-JSON dump that the
// application consumes. Everything else in the dump is ignored.
type probePayload struct {
	Title    string                   `json:"title"`
	Duration float64                  `json:"duration"`
	Thumb    string                   `json:"thumbnail"`
	Uploader string                   `json:"uploader"`
	IsLive   bool                     `json:"is_live"`
	AgeLimit int                      `json:"age_limit"`
	Formats  []model.StreamDescriptor `json:"formats"`
}

// parseProbeOutput decodes the metadata dump emitted by a probe run
func parseProbeOutput(data []byte) (*model.VideoInfo, error) {
	var payload probePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	title := payload.Title
	if title == "" {
		title = "Unknown"
	}
	uploader := payload.Uploader
	if uploader == "" {
		uploader = "Unknown"
	}

	return &model.VideoInfo{
		Title:     title,
		Duration:  int(payload.Duration),
		Thumbnail: payload.Thumb,
		Uploader:  uploader,
		Streams:   payload.Formats,
		IsLive:    payload.IsLive,
		AgeLimit:  payload.AgeLimit,
	}, nil
}
