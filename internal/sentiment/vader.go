package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

// VADER label cutoffs on the compound score.
const (
	vaderPositiveCutoff = 0.20
	vaderNegativeCutoff = -0.20
)

var (
	vaderAnalyzer = govader.NewSentimentIntensityAnalyzer()

	markdownLink = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURL      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// StripLinks removes markdown links (keeping their text) and bare URLs.
func StripLinks(input string) string {
	input = markdownLink.ReplaceAllString(input, "$1")
	return bareURL.ReplaceAllString(input, "")
}

// MarkdownToText renders markdown to HTML and collapses it to a single line
// of plain words, with links stripped. Harvested titles arrive as markdown.
func MarkdownToText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(rendered)), " ")
	return StripLinks(plain)
}

// AnalyzeWithVADER scores a phrase with the VADER model and maps the compound
// score onto a coarse label. Used to cross-check the hand lexicon, never to
// drive the session.
func AnalyzeWithVADER(text string) (float64, string) {
	plain := MarkdownToText(text)

	scores := vaderAnalyzer.PolarityScores(plain)
	compound := scores.Compound

	label := "neutral"
	if compound >= vaderPositiveCutoff {
		label = "positive"
	} else if compound <= vaderNegativeCutoff {
		label = "negative"
	}

	return compound, label
}
