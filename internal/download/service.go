package download

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/fetchtube/fetchtube/internal/engine"
	"github.com/fetchtube/fetchtube/internal/format"
	"github.com/fetchtube/fetchtube/internal/logging"
	"github.com/fetchtube/fetchtube/internal/model"
	"github.com/fetchtube/fetchtube/internal/progress"
	"github.com/fetchtube/fetchtube/internal/queue"
)

// DefaultAudioQuality is the bitrate requested for audio extraction when the
// request leaves it unset.
const DefaultAudioQuality = "320"

// ErrBusy is returned when an operation is started while another one is
// still running on the same service.
var ErrBusy = errors.New("an operation is already running")

// Request describes one download operation
type Request struct {
	URL           string
	Quality       string // "best" or "<height>p"
	Container     string // output container (video) or codec (audio)
	AudioOnly     bool
	AudioQuality  string // bitrate, defaults to DefaultAudioQuality
	PlaylistItems string // engine range syntax, passed through uninterpreted
}

// Outcome is the terminal result of one operation. Cancellation is a normal
// outcome, never an error.
type Outcome struct {
	Status  model.DownloadStatus
	Message string
}

// Service orchestrates operations against the engine. At most one operation
// runs at a time; the cancellation flag is the only state shared with the
// foreground and is read without locking.
type Service struct {
	engine    engine.Engine
	outputDir string
	norm      *progress.Normalizer
	running   atomic.Bool
	cancelled atomic.Bool
	log       zerolog.Logger
}

// NewService creates an orchestrator writing into outputDir and delivering
// normalized progress records to onProgress.
func NewService(eng engine.Engine, outputDir string, onProgress func(model.ProgressRecord)) *Service {
	return &Service{
		engine:    eng,
		outputDir: outputDir,
		norm:      progress.NewNormalizer(onProgress),
		log:       logging.Component("download"),
	}
}

// SetOutputDirectory changes where downloads land. Not safe to call while an
// operation is running.
func (s *Service) SetOutputDirectory(dir string) {
	s.outputDir = dir
}

// Cancel requests cancellation of the current and any queued work. Advisory:
// it takes effect at the next checkpoint the orchestrator controls, or when
// the in-flight engine call returns on its own. The engine offers no way to
// interrupt a running call.
func (s *Service) Cancel() {
	s.cancelled.Store(true)
}

// Cancelled reports whether cancellation has been requested
func (s *Service) Cancelled() bool {
	return s.cancelled.Load()
}

// Probe extracts metadata without downloading. The content type is
// classified from the URL shape, not from the engine's report, because the
// shape decides the output template.
func (s *Service) Probe(ctx context.Context, url string) (*model.VideoInfo, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.running.Store(false)

	info, err := s.engine.Probe(ctx, url)
	if err != nil {
		s.log.Error().Err(err).Str("url", url).Msg("probe failed")
		return nil, newError(KindNotFound, err.Error())
	}
	info.Type = model.DetectVideoType(url)
	return info, nil
}

// Download runs one single-item operation to completion
func (s *Service) Download(ctx context.Context, req Request) (Outcome, error) {
	template := filepath.Join(s.outputDir, "%(title)s.%(ext)s")
	return s.start(ctx, req, template, false)
}

// DownloadPlaylist runs one playlist operation: entries land in a subfolder
// named after the playlist, numbered by playlist index. The optional item
// range is handed to the engine uninterpreted.
func (s *Service) DownloadPlaylist(ctx context.Context, req Request) (Outcome, error) {
	template := filepath.Join(s.outputDir, "%(playlist_title)s", "%(playlist_index)s - %(title)s.%(ext)s")
	return s.start(ctx, req, template, true)
}

// RunQueue drains the queue, applying per-item overrides on top of the
// defaults and marking each item's terminal status. It stops at the first
// cancelled outcome. onItem, when set, observes every finished item.
func (s *Service) RunQueue(ctx context.Context, q *queue.Queue, defaults Request, onItem func(*queue.Item, Outcome, error)) {
	for {
		if s.cancelled.Load() {
			return
		}
		item, ok := q.Next()
		if !ok {
			return
		}

		req := applyOverrides(defaults, item)
		var outcome Outcome
		var err error
		if model.DetectVideoType(item.URL) == model.TypePlaylist {
			outcome, err = s.DownloadPlaylist(ctx, req)
		} else {
			outcome, err = s.Download(ctx, req)
		}

		switch {
		case err != nil:
			q.MarkError()
		case outcome.Status == model.StatusFinished:
			q.MarkComplete()
		}

		if onItem != nil {
			onItem(item, outcome, err)
		}
		if outcome.Status == model.StatusCancelled {
			return
		}
	}
}

// start guards re-entrancy, resets per-operation state and performs the
// engine invocation with the one-shot fallback retry.
func (s *Service) start(ctx context.Context, req Request, template string, playlist bool) (Outcome, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Outcome{}, ErrBusy
	}
	defer s.running.Store(false)

	s.cancelled.Store(false)
	s.norm.Reset()

	if req.AudioQuality == "" {
		req.AudioQuality = DefaultAudioQuality
	}

	job := engine.Job{
		URL:            req.URL,
		Format:         format.ForQuality(req.Quality, req.Container, req.AudioOnly).String(),
		OutputTemplate: template,
		Container:      req.Container,
		AudioOnly:      req.AudioOnly,
		AudioQuality:   req.AudioQuality,
		Playlist:       playlist,
		PlaylistItems:  req.PlaylistItems,
	}
	return s.run(ctx, job)
}

func (s *Service) run(ctx context.Context, job engine.Job) (Outcome, error) {
	if s.cancelled.Load() {
		return Outcome{Status: model.StatusCancelled, Message: "Download cancelled"}, nil
	}

	err := s.engine.Download(ctx, job, s.norm.Handle)
	if err == nil {
		return Outcome{Status: model.StatusFinished, Message: "Download completed"}, nil
	}
	if s.cancelled.Load() {
		return Outcome{Status: model.StatusCancelled, Message: "Download cancelled"}, nil
	}

	if isForbidden403(err) {
		// One scripted retry with the unconstrained expression. The https
		// protocol constraint provokes this failure on some streams, so the
		// looser expression usually resolves it; a second failure is
		// terminal, never retried again.
		job.Format = format.FallbackExpression(job.AudioOnly).String()
		s.log.Warn().Str("url", job.URL).Str("fallback", job.Format).
			Msg("access restriction hit, retrying with fallback selection")

		if retryErr := s.engine.Download(ctx, job, s.norm.Handle); retryErr != nil {
			if s.cancelled.Load() {
				return Outcome{Status: model.StatusCancelled, Message: "Download cancelled"}, nil
			}
			classified := newError(KindAccessDenied, retryErr.Error())
			s.log.Error().Err(retryErr).Str("url", job.URL).Msg("fallback retry failed")
			return Outcome{Status: model.StatusError, Message: classified.Message}, classified
		}
		return Outcome{Status: model.StatusFinished, Message: "Download completed"}, nil
	}

	classified := classifyFailure(err)
	s.log.Error().Err(err).Str("url", job.URL).Str("kind", string(classified.Kind)).Msg("download failed")
	return Outcome{Status: model.StatusError, Message: classified.Message}, classified
}

// applyOverrides merges queue item overrides onto the default request
func applyOverrides(defaults Request, item *queue.Item) Request {
	req := defaults
	req.URL = item.URL
	if item.Options.Quality != "" {
		req.Quality = item.Options.Quality
	}
	if item.Options.Container != "" {
		req.Container = item.Options.Container
	}
	if item.Options.AudioOnly {
		req.AudioOnly = true
	}
	if item.Options.PlaylistItems != "" {
		req.PlaylistItems = item.Options.PlaylistItems
	}
	return req
}
