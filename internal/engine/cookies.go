package engine

import (
	"os"
	"os/exec"
	"runtime"
)

// browserCandidate pairs an engine browser name with the install paths that
// identify it.
type browserCandidate struct {
	name  string
	paths []string
}

// resolveCookiesFile returns the path when it exists, else empty. A
// configured but missing file is silently dropped so the browser fallback
// can apply.
func resolveCookiesFile(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// browserCandidates lists the supported browsers per OS, in preference order
func browserCandidates() []browserCandidate {
	switch runtime.GOOS {
	case "windows":
		return []browserCandidate{
			{"chrome", []string{
				os.ExpandEnv(`${LOCALAPPDATA}\Google\Chrome\Application\chrome.exe`),
				os.ExpandEnv(`${PROGRAMFILES}\Google\Chrome\Application\chrome.exe`),
				os.ExpandEnv(`${PROGRAMFILES(X86)}\Google\Chrome\Application\chrome.exe`),
			}},
			{"edge", []string{
				os.ExpandEnv(`${PROGRAMFILES}\Microsoft\Edge\Application\msedge.exe`),
				os.ExpandEnv(`${PROGRAMFILES(X86)}\Microsoft\Edge\Application\msedge.exe`),
			}},
		}
	case "darwin":
		return []browserCandidate{
			{"chrome", []string{"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"}},
			{"edge", []string{"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge"}},
		}
	default:
		return []browserCandidate{
			{"chrome", []string{"/usr/bin/google-chrome", "/usr/bin/google-chrome-stable", "/usr/bin/chromium", "/usr/bin/chromium-browser"}},
			{"edge", []string{"/usr/bin/microsoft-edge", "/usr/bin/microsoft-edge-stable"}},
		}
	}
}

// DetectBrowser finds an installed browser whose cookie store the engine can
// read. First candidate with an existing install path wins; PATH lookup is
// the last resort. Empty when nothing is found.
func DetectBrowser() string {
	for _, candidate := range browserCandidates() {
		for _, path := range candidate.paths {
			if path == "" {
				continue
			}
			if _, err := os.Stat(path); err == nil {
				return candidate.name
			}
		}
	}
	if _, err := exec.LookPath("chrome"); err == nil {
		return "chrome"
	}
	if _, err := exec.LookPath("msedge"); err == nil {
		return "edge"
	}
	return ""
}
