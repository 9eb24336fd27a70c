package format

import (
	"fmt"
	"strconv"
	"strings"
)

// QualityBest is the sentinel quality label meaning "no height bound".
const QualityBest = "best"

// SelectionExpression is an ordered list of engine selector strings, most
// specific first. The engine tries each tier and falls through on no match.
// Immutable once built.
type SelectionExpression []string

// String joins the tiers into the engine's fallback syntax
func (se SelectionExpression) String() string {
	return strings.Join(se, "/")
}

// FallbackExpression returns the fully unconstrained expression used for the
// one-shot retry after an access-restriction failure.
func FallbackExpression(audioOnly bool) SelectionExpression {
	if audioOnly {
		return SelectionExpression{"bestaudio", "best"}
	}
	return SelectionExpression{"best"}
}

// ForQuality builds the selection expression for a quality label.
//
// The [protocol=https] marker sidesteps a class of server-side access
// restriction, so it is tried first, but never alone, since some content
// has no streams carrying it. Unknown or malformed labels fall back to the
// unconstrained expression; that is a policy choice, not an error, because
// this layer supports the presentation and does not validate.
//
// The container is intentionally absent from the tiers: it drives the remux
// step, not stream selection.
func ForQuality(quality, container string, audioOnly bool) SelectionExpression {
	if audioOnly {
		return audioExpression()
	}

	if quality == QualityBest {
		return SelectionExpression{
			"bestvideo[protocol=https]+bestaudio[protocol=https]",
			"bestvideo+bestaudio",
			"best",
		}
	}

	if height, ok := parseHeightLabel(quality); ok {
		return SelectionExpression{
			fmt.Sprintf("bestvideo[height<=%d][protocol=https]+bestaudio[protocol=https]", height),
			fmt.Sprintf("bestvideo[height<=%d]+bestaudio", height),
			fmt.Sprintf("best[height<=%d]", height),
			"best",
		}
	}

	return SelectionExpression{"bestvideo+bestaudio", "best"}
}

// audioExpression prefers the m4a container and mp4a codec family over https
// first, then relaxes codec, then protocol, then everything.
func audioExpression() SelectionExpression {
	return SelectionExpression{
		"bestaudio[ext=m4a][protocol=https]",
		"bestaudio[acodec^=mp4a][protocol=https]",
		"bestaudio[protocol=https]",
		"bestaudio",
		"best",
	}
}

// parseHeightLabel parses labels of the form "<integer>p" with a positive
// integer, e.g. "1080p".
func parseHeightLabel(label string) (int, bool) {
	if !strings.HasSuffix(label, "p") {
		return 0, false
	}
	height, err := strconv.Atoi(strings.TrimSuffix(label, "p"))
	if err != nil || height <= 0 {
		return 0, false
	}
	return height, true
}
