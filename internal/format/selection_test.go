package format

import (
	"strings"
	"testing"
)

func TestForQuality_HeightLabels(t *testing.T) {
	tests := []struct {
		quality   string
		wantFirst string
		wantLast  string
		wantTiers int
	}{
		{"1080p", "bestvideo[height<=1080][protocol=https]+bestaudio[protocol=https]", "best", 4},
		{"720p", "bestvideo[height<=720][protocol=https]+bestaudio[protocol=https]", "best", 4},
		{"144p", "bestvideo[height<=144][protocol=https]+bestaudio[protocol=https]", "best", 4},
		{"4320p", "bestvideo[height<=4320][protocol=https]+bestaudio[protocol=https]", "best", 4},
	}

	for _, test := range tests {
		expr := ForQuality(test.quality, "mp4", false)
		if len(expr) != test.wantTiers {
			t.Errorf("ForQuality(%q) has %d tiers, expected %d", test.quality, len(expr), test.wantTiers)
		}
		if expr[0] != test.wantFirst {
			t.Errorf("ForQuality(%q) first tier = %q, expected %q", test.quality, expr[0], test.wantFirst)
		}
		if expr[len(expr)-1] != test.wantLast {
			t.Errorf("ForQuality(%q) last tier = %q, expected %q", test.quality, expr[len(expr)-1], test.wantLast)
		}
	}
}

func TestForQuality_SecondTierDropsProtocolMarker(t *testing.T) {
	expr := ForQuality("1080p", "mp4", false)
	if strings.Contains(expr[1], "protocol") {
		t.Errorf("second tier %q should not carry the protocol marker", expr[1])
	}
	if !strings.Contains(expr[1], "height<=1080") {
		t.Errorf("second tier %q should keep the height bound", expr[1])
	}
}

func TestForQuality_Best(t *testing.T) {
	expr := ForQuality("best", "mp4", false)
	want := "bestvideo[protocol=https]+bestaudio[protocol=https]/bestvideo+bestaudio/best"
	if expr.String() != want {
		t.Errorf("ForQuality(best) = %q, expected %q", expr.String(), want)
	}
}

func TestForQuality_MalformedLabels(t *testing.T) {
	// Malformed labels are a policy fallback, never an error
	tests := []string{"", "0p", "-720p", "hd", "1080", "p", "720P", "abcp"}

	for _, quality := range tests {
		expr := ForQuality(quality, "mp4", false)
		if len(expr) == 0 {
			t.Fatalf("ForQuality(%q) returned an empty expression", quality)
		}
		if expr[len(expr)-1] != "best" {
			t.Errorf("ForQuality(%q) last tier = %q, expected the unconstrained best", quality, expr[len(expr)-1])
		}
		for _, tier := range expr {
			if strings.Contains(tier, "height") {
				t.Errorf("ForQuality(%q) tier %q carries a height bound from a malformed label", quality, tier)
			}
		}
	}
}

func TestForQuality_AudioChain(t *testing.T) {
	expr := ForQuality("best", "mp3", true)
	want := []string{
		"bestaudio[ext=m4a][protocol=https]",
		"bestaudio[acodec^=mp4a][protocol=https]",
		"bestaudio[protocol=https]",
		"bestaudio",
		"best",
	}
	if len(expr) != len(want) {
		t.Fatalf("audio expression has %d tiers, expected %d: %v", len(expr), len(want), expr)
	}
	for i, tier := range want {
		if expr[i] != tier {
			t.Errorf("audio tier %d = %q, expected %q", i, expr[i], tier)
		}
	}
}

func TestForQuality_ContainerNeverConstrainsSelection(t *testing.T) {
	for _, container := range []string{"mp4", "mkv", "webm", ""} {
		expr := ForQuality("720p", container, false)
		for _, tier := range expr {
			if strings.Contains(tier, "ext=") {
				t.Errorf("container %q leaked into tier %q", container, tier)
			}
		}
	}
}

func TestFallbackExpression(t *testing.T) {
	if got := FallbackExpression(false).String(); got != "best" {
		t.Errorf("video fallback = %q, expected %q", got, "best")
	}
	if got := FallbackExpression(true).String(); got != "bestaudio/best" {
		t.Errorf("audio fallback = %q, expected %q", got, "bestaudio/best")
	}
}

func TestSelectionExpressionString(t *testing.T) {
	expr := SelectionExpression{"a", "b", "c"}
	if got := expr.String(); got != "a/b/c" {
		t.Errorf("String() = %q, expected %q", got, "a/b/c")
	}
}
