package format

import (
	"fmt"
	"strings"

	"github.com/fetchtube/fetchtube/internal/model"
)

// QualityChoice is one entry of a quality dropdown: a selectable code and its
// display label.
type QualityChoice struct {
	Code  string
	Label string
}

// qualityTier is one rung of the resolution ladder
type qualityTier struct {
	code   string
	name   string
	height int
}

// videoTiers is the fixed resolution ladder, highest first
var videoTiers = []qualityTier{
	{"4320p", "8K Ultra HD", 4320},
	{"2160p", "4K Ultra HD", 2160},
	{"1440p", "2K QHD", 1440},
	{"1080p", "Full HD", 1080},
	{"720p", "HD", 720},
	{"480p", "SD", 480},
	{"360p", "Low", 360},
	{"240p", "Very Low", 240},
	{"144p", "Minimum", 144},
}

// Classify turns raw stream descriptors into display-ready format options.
// A stream is video when it declares a video codec and audio when it declares
// an audio codec; muxed streams get both flags. Streams carrying neither
// track are dropped.
func Classify(streams []model.StreamDescriptor) []model.FormatOption {
	options := make([]model.FormatOption, 0, len(streams))
	for _, sd := range streams {
		isVideo := sd.HasVideo()
		isAudio := sd.HasAudio()
		if !isVideo && !isAudio {
			continue
		}

		var resolution string
		switch {
		case sd.Height > 0 && sd.Width > 0:
			resolution = fmt.Sprintf("%dx%d", sd.Width, sd.Height)
		case sd.Height > 0:
			resolution = fmt.Sprintf("%dp", sd.Height)
		}

		quality := "Audio"
		if sd.Height > 0 {
			quality = tierLabel(sd.Height)
		}

		opt := model.FormatOption{
			FormatID:    sd.FormatID,
			Extension:   sd.Ext,
			Resolution:  resolution,
			FPS:         sd.FPS,
			Filesize:    sd.Size(),
			Quality:     quality,
			IsVideo:     isVideo,
			IsAudio:     isAudio,
			Description: describe(sd),
		}
		if isVideo {
			opt.VCodec = sd.VCodec
		}
		if isAudio {
			opt.ACodec = sd.ACodec
		}
		options = append(options, opt)
	}
	return options
}

// VideoOptions returns only the options that carry a video track
func VideoOptions(streams []model.StreamDescriptor) []model.FormatOption {
	var out []model.FormatOption
	for _, opt := range Classify(streams) {
		if opt.IsVideo {
			out = append(out, opt)
		}
	}
	return out
}

// AudioOptions returns only the audio-only options
func AudioOptions(streams []model.StreamDescriptor) []model.FormatOption {
	var out []model.FormatOption
	for _, opt := range Classify(streams) {
		if opt.IsAudio && !opt.IsVideo {
			out = append(out, opt)
		}
	}
	return out
}

// AvailableQualities lists the quality choices satisfiable by the given
// streams, "best" always first. A tier is offered when any stream's height
// meets or exceeds it: selection expressions bound by height can always
// degrade to a lower stream, so a source with only 1080p streams still
// offers 720p and below.
func AvailableQualities(streams []model.StreamDescriptor) []QualityChoice {
	maxHeight := 0
	for _, sd := range streams {
		if sd.Height > maxHeight {
			maxHeight = sd.Height
		}
	}

	choices := []QualityChoice{{Code: QualityBest, Label: "Best Available"}}
	for _, tier := range videoTiers {
		if maxHeight >= tier.height {
			choices = append(choices, QualityChoice{
				Code:  tier.code,
				Label: fmt.Sprintf("%s (%s)", tier.name, tier.code),
			})
		}
	}
	return choices
}

// QualityOptions returns the full quality ladder for dropdowns shown before
// a probe has run.
func QualityOptions() []QualityChoice {
	choices := []QualityChoice{{Code: QualityBest, Label: "Best Available"}}
	for _, tier := range videoTiers {
		choices = append(choices, QualityChoice{
			Code:  tier.code,
			Label: fmt.Sprintf("%s (%s)", tier.name, tier.code),
		})
	}
	return choices
}

// OutputFormats lists the selectable container formats
func OutputFormats(audioOnly bool) []QualityChoice {
	if audioOnly {
		return []QualityChoice{
			{"mp3", "MP3 Audio"},
			{"m4a", "M4A Audio (AAC)"},
			{"aac", "AAC Audio"},
			{"wav", "WAV Audio (Lossless)"},
			{"flac", "FLAC Audio (Lossless)"},
			{"opus", "Opus Audio"},
		}
	}
	return []QualityChoice{
		{"mp4", "MP4 Video"},
		{"mkv", "MKV Video"},
		{"webm", "WebM Video"},
		{"avi", "AVI Video"},
		{"mov", "MOV Video"},
	}
}

// AudioQualities lists the selectable audio bitrates
func AudioQualities() []QualityChoice {
	return []QualityChoice{
		{"320", "High (320 kbps)"},
		{"256", "Medium-High (256 kbps)"},
		{"192", "Medium (192 kbps)"},
		{"128", "Standard (128 kbps)"},
		{"96", "Low (96 kbps)"},
	}
}

// tierLabel returns the code of the first tier the height meets or exceeds.
// Heights below the bottom rung still get a label, never an error.
func tierLabel(height int) string {
	for _, tier := range videoTiers {
		if height >= tier.height {
			return tier.code
		}
	}
	return "Low"
}

// describe composes the human-readable summary line for a stream
func describe(sd model.StreamDescriptor) string {
	var parts []string
	if sd.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dp", sd.Height))
	}
	if sd.FPS > 30 {
		parts = append(parts, fmt.Sprintf("%.0ffps", sd.FPS))
	}
	if sd.HasVideo() {
		if name := codecName(sd.VCodec); name != "" {
			parts = append(parts, name)
		}
	} else if sd.HasAudio() && sd.ABR > 0 {
		parts = append(parts, fmt.Sprintf("%dkbps", int(sd.ABR)))
	}
	if size := sd.Size(); size > 0 {
		parts = append(parts, model.FormatSize(size))
	}
	if sd.Ext != "" {
		parts = append(parts, "."+sd.Ext)
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, " | ")
}

// codecName simplifies a codec tag to its family name
func codecName(vcodec string) string {
	lower := strings.ToLower(vcodec)
	switch {
	case strings.Contains(lower, "avc") || strings.Contains(lower, "h264"):
		return "H.264"
	case strings.Contains(lower, "hevc") || strings.Contains(lower, "h265"):
		return "H.265"
	case strings.Contains(lower, "vp9"):
		return "VP9"
	case strings.Contains(lower, "av1") || strings.Contains(lower, "av01"):
		return "AV1"
	default:
		return ""
	}
}
