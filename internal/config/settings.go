package config

import (
	"fyne.io/fyne/v2"

	"github.com/fetchtube/fetchtube/internal/format"
	"github.com/fetchtube/fetchtube/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir    = "download_directory"
	KeyQuality        = "quality"
	KeyContainer      = "container"
	KeyAudioOnly      = "audio_only"
	KeyAudioQuality   = "audio_quality"
	KeyCookiesFile    = "cookies_file"
	KeyBrowserCookies = "browser_cookies"
)

// Default values
const (
	DefaultQuality      = format.QualityBest
	DefaultContainer    = "mp4"
	DefaultAudioQuality = "320"
)

// Settings manages persisted application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a settings manager backed by the app's preferences
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory, falling
// back to the user's Downloads folder.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.HomeDownloadsDir()
		if err != nil {
			defaultDir = "."
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQuality returns the default quality label
func (s *Settings) GetQuality() string {
	quality := s.app.Preferences().String(KeyQuality)
	if quality == "" {
		return DefaultQuality
	}
	return quality
}

// SetQuality sets the default quality label
func (s *Settings) SetQuality(quality string) {
	s.app.Preferences().SetString(KeyQuality, quality)
}

// GetContainer returns the default output container
func (s *Settings) GetContainer() string {
	container := s.app.Preferences().String(KeyContainer)
	if container == "" {
		return DefaultContainer
	}
	return container
}

// SetContainer sets the default output container
func (s *Settings) SetContainer(container string) {
	s.app.Preferences().SetString(KeyContainer, container)
}

// GetAudioOnly returns whether downloads default to audio extraction
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().Bool(KeyAudioOnly)
}

// SetAudioOnly sets the audio-only default
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
}

// GetAudioQuality returns the preferred audio bitrate
func (s *Settings) GetAudioQuality() string {
	quality := s.app.Preferences().String(KeyAudioQuality)
	if quality == "" {
		return DefaultAudioQuality
	}
	return quality
}

// SetAudioQuality sets the preferred audio bitrate
func (s *Settings) SetAudioQuality(quality string) {
	s.app.Preferences().SetString(KeyAudioQuality, quality)
}

// GetCookiesFile returns the configured cookies.txt path, may be empty
func (s *Settings) GetCookiesFile() string {
	return s.app.Preferences().String(KeyCookiesFile)
}

// SetCookiesFile sets the cookies.txt path
func (s *Settings) SetCookiesFile(path string) {
	s.app.Preferences().SetString(KeyCookiesFile, path)
}

// GetBrowserCookies returns whether browser cookie detection is enabled
func (s *Settings) GetBrowserCookies() bool {
	return s.app.Preferences().Bool(KeyBrowserCookies)
}

// SetBrowserCookies toggles browser cookie detection
func (s *Settings) SetBrowserCookies(enabled bool) {
	s.app.Preferences().SetBool(KeyBrowserCookies, enabled)
}
