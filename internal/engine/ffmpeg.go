package engine

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ffmpegBinary returns the platform executable name
func ffmpegBinary() string {
	if runtime.GOOS == "windows" {
		return "ffmpeg.exe"
	}
	return "ffmpeg"
}

// wellKnownFFmpegDirs lists install locations checked after the bundled
// folder and PATH.
func wellKnownFFmpegDirs() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`C:\ProgramData\chocolatey\bin`,
			`C:\ffmpeg\bin`,
			os.ExpandEnv(`${LOCALAPPDATA}\Microsoft\WinGet\Links`),
			os.ExpandEnv(`${USERPROFILE}\scoop\shims`),
			`C:\Program Files\ffmpeg\bin`,
			`C:\Program Files (x86)\ffmpeg\bin`,
		}
	}
	return []string{
		"/usr/local/bin",
		"/opt/homebrew/bin",
		"/opt/local/bin",
	}
}

// LocateFFmpeg finds the directory containing ffmpeg, preferring a bundled
// "ffmpeg" folder next to the executable, then PATH, then well-known install
// locations. An empty result means the engine should rely on its own lookup.
func LocateFFmpeg() string {
	if exePath, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exePath), "ffmpeg")
		if _, err := os.Stat(filepath.Join(bundled, ffmpegBinary())); err == nil {
			return bundled
		}
	}

	// On PATH the engine finds it by itself
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		return ""
	}

	for _, dir := range wellKnownFFmpegDirs() {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, ffmpegBinary())); err == nil {
			return dir
		}
	}
	return ""
}
