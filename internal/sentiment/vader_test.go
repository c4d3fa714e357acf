package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripLinks(t *testing.T) {
	assert.Equal(t, "see this", StripLinks("see [this](https://example.com/post)"))
	assert.Equal(t, "look at  now", StripLinks("look at https://example.com/a?b=c now"))
	assert.Equal(t, "plain text stays", StripLinks("plain text stays"))
}

func TestMarkdownToText(t *testing.T) {
	got := MarkdownToText("bare https://example.com/x here\n\nsecond line")
	assert.Contains(t, got, "here")
	assert.Contains(t, got, "second line")
	assert.NotContains(t, got, "example.com")
	assert.NotContains(t, got, "\n")
}

func TestAnalyzeWithVADERLabels(t *testing.T) {
	score, label := AnalyzeWithVADER("this is wonderful, I love it so much")
	assert.Greater(t, score, 0.0)
	assert.Equal(t, "positive", label)

	score, label = AnalyzeWithVADER("this is horrible and I hate everything")
	assert.Less(t, score, 0.0)
	assert.Equal(t, "negative", label)

	_, label = AnalyzeWithVADER("the table is in the room")
	assert.Equal(t, "neutral", label)
}
