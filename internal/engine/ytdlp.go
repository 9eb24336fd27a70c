package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"github.com/fetchtube/fetchtube/internal/logging"
	"github.com/fetchtube/fetchtube/internal/model"
)

// progressInterval is how often the binding polls the engine for progress.
// The normalizer applies its own throttle on top; this only bounds callback
// frequency at the source.
const progressInterval = 100 * time.Millisecond

// Options configures the yt-dlp backed engine
type Options struct {
	// FFmpegDir overrides ffmpeg discovery; empty means locate automatically.
	FFmpegDir string
	// CookiesFile is an explicit cookies.txt path. Takes priority over
	// browser cookies when both are set.
	CookiesFile string
	// CookiesFromBrowser enables browser cookie detection when no cookie
	// file is configured.
	CookiesFromBrowser bool
}

// YTDLP runs operations through the yt-dlp binary via the go-ytdlp binding
type YTDLP struct {
	ffmpegDir   string
	cookiesFile string
	browser     string
	log         zerolog.Logger
}

// New creates an engine, resolving the ffmpeg location and cookie source once
func New(opts Options) *YTDLP {
	e := &YTDLP{
		ffmpegDir: opts.FFmpegDir,
		log:       logging.Component("engine"),
	}
	if e.ffmpegDir == "" {
		e.ffmpegDir = LocateFFmpeg()
	}
	e.cookiesFile = resolveCookiesFile(opts.CookiesFile)
	if e.cookiesFile == "" && opts.CookiesFromBrowser {
		e.browser = DetectBrowser()
	}
	if e.ffmpegDir != "" {
		e.log.Debug().Str("dir", e.ffmpegDir).Msg("using local ffmpeg")
	}
	return e
}

// EnsureInstalled downloads the yt-dlp binary if it is not already available
func EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return fmt.Errorf("install yt-dlp: %w", err)
	}
	return nil
}

// base assembles the flags shared by every operation: transport bypasses and
// the cookie source.
func (e *YTDLP) base() *ytdlp.Command {
	cmd := ytdlp.New().
		NoCheckCertificates().
		GeoBypass()
	if e.ffmpegDir != "" {
		cmd.FFmpegLocation(e.ffmpegDir)
	}
	if e.cookiesFile != "" {
		cmd.Cookies(e.cookiesFile)
	} else if e.browser != "" {
		cmd.CookiesFromBrowser(e.browser)
	}
	return cmd
}

// Probe extracts metadata without downloading. The returned info's Type is
// left unset; URL-shape classification belongs to the caller.
func (e *YTDLP) Probe(ctx context.Context, url string) (*model.VideoInfo, error) {
	cmd := e.base().
		SkipDownload().
		DumpSingleJSON().
		NoWarnings()

	result, err := cmd.Run(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", url, err)
	}

	info, err := parseProbeOutput([]byte(result.Stdout))
	if err != nil {
		return nil, fmt.Errorf("probe %q: %w", url, err)
	}
	info.URL = url
	return info, nil
}

// Download runs one download job to completion. Progress events are delivered
// synchronously through onEvent from within the blocking call.
func (e *YTDLP) Download(ctx context.Context, job Job, onEvent func(Event)) error {
	cmd := e.base().
		ForceOverwrites().
		RestrictFilenames().
		Output(job.OutputTemplate).
		Format(job.Format)

	if job.Playlist {
		if job.PlaylistItems != "" {
			cmd.PlaylistItems(job.PlaylistItems)
		}
	} else {
		cmd.NoPlaylist()
	}

	if job.AudioOnly {
		cmd.ExtractAudio().
			AudioFormat(audioCodec(job.Container)).
			AudioQuality(job.AudioQuality)
	} else {
		cmd.MergeOutputFormat(job.Container).
			EmbedMetadata()
	}

	if onEvent != nil {
		cmd.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
			onEvent(convertUpdate(update))
		})
	}

	e.log.Debug().Str("url", job.URL).Str("format", job.Format).Msg("invoking engine")
	if _, err := cmd.Run(ctx, job.URL); err != nil {
		return fmt.Errorf("download %q: %w", job.URL, err)
	}
	return nil
}

// audioCodec maps the selected output format to a codec the engine's audio
// extractor accepts, defaulting to mp3.
func audioCodec(container string) string {
	switch container {
	case "mp3", "aac", "wav", "flac", "m4a", "opus":
		return container
	default:
		return "mp3"
	}
}

// convertUpdate reshapes a binding progress update into a neutral event
func convertUpdate(u ytdlp.ProgressUpdate) Event {
	ev := Event{
		DownloadedBytes: int64(u.DownloadedBytes),
		TotalBytes:      int64(u.TotalBytes),
		Speed:           -1,
		ETASec:          -1,
		PercentText:     u.PercentString(),
	}

	switch u.Status {
	case ytdlp.ProgressStatusDownloading:
		ev.Status = EventDownloading
	case ytdlp.ProgressStatusPostProcessing:
		ev.Status = EventProcessing
	case ytdlp.ProgressStatusFinished:
		ev.Status = EventFinished
	case ytdlp.ProgressStatusError:
		ev.Status = EventError
	default:
		ev.Status = EventStatus(u.Status)
	}

	ev.Filename = u.Filename
	if ev.Filename == "" && u.Info != nil && u.Info.Filename != nil {
		ev.Filename = *u.Info.Filename
	}

	if !u.Started.IsZero() && u.DownloadedBytes > 0 {
		if elapsed := time.Since(u.Started).Seconds(); elapsed > 0 {
			ev.Speed = float64(u.DownloadedBytes) / elapsed
		}
	}
	if eta := u.ETA(); eta > 0 {
		ev.ETASec = int(eta.Seconds())
	}
	return ev
}
