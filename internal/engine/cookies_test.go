package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveCookiesFile(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "cookies.txt")
	if err := os.WriteFile(existing, []byte("# Netscape HTTP Cookie File\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"empty path", "", ""},
		{"existing file", existing, existing},
		{"missing file", filepath.Join(t.TempDir(), "absent.txt"), ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := resolveCookiesFile(test.path); got != test.expected {
				t.Errorf("resolveCookiesFile(%q) = %q, expected %q", test.path, got, test.expected)
			}
		})
	}
}

func TestCookiesFileBeatsBrowserDetection(t *testing.T) {
	cookies := filepath.Join(t.TempDir(), "cookies.txt")
	if err := os.WriteFile(cookies, []byte("# Netscape HTTP Cookie File\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	eng := New(Options{CookiesFile: cookies, CookiesFromBrowser: true})
	if eng.cookiesFile != cookies {
		t.Errorf("cookiesFile = %q, expected %q", eng.cookiesFile, cookies)
	}
	if eng.browser != "" {
		t.Errorf("browser = %q, a configured cookies file must disable detection", eng.browser)
	}
}

func TestBrowserCandidatesHavePaths(t *testing.T) {
	for _, candidate := range browserCandidates() {
		if candidate.name == "" {
			t.Error("candidate with empty browser name")
		}
		if len(candidate.paths) == 0 {
			t.Errorf("candidate %q lists no install paths", candidate.name)
		}
	}
}
