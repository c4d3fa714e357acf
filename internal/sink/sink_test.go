package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/farsignal/internal/sentiment"
)

func newTestTerminal() (*Terminal, *bytes.Buffer) {
	var buf bytes.Buffer
	t := NewTerminal(&buf)
	t.typeDelay = 0
	return t, &buf
}

func TestTerminalRevealText(t *testing.T) {
	term, buf := newTestTerminal()
	term.RevealText("does anybody else feel lonely")
	assert.Equal(t, "does anybody else feel lonely\n", buf.String())
}

func TestTerminalShowStatus(t *testing.T) {
	term, buf := newTestTerminal()
	term.ShowStatus("incoming transmission", "scanning...")
	assert.Contains(t, buf.String(), "INCOMING TRANSMISSION")
	assert.Contains(t, buf.String(), "scanning...")
}

func TestTerminalEarthLevelMeter(t *testing.T) {
	cases := []struct {
		distance int
		meter    string
	}{
		{-5, "*---------------"},
		{0, "-----*----------"},
		{10, "---------------*"},
	}
	for _, tc := range cases {
		term, buf := newTestTerminal()
		term.SetEarthLevel(tc.distance)
		assert.Contains(t, buf.String(), tc.meter, "distance %d", tc.distance)
	}
}

func TestTerminalSentimentIndicator(t *testing.T) {
	term, buf := newTestTerminal()
	term.ShowSentimentIndicator(sentiment.EmotionSadness, "#4169E1", 82)
	out := buf.String()
	assert.Contains(t, out, "sadness")
	assert.Contains(t, out, "82%")
	assert.Contains(t, out, "\x1b[38;2;65;105;225m")
}

func TestColorToANSI(t *testing.T) {
	assert.Equal(t, "\x1b[38;2;255;0;0m", colorToANSI("#FF0000"))
	assert.Empty(t, colorToANSI("red"))
	assert.Empty(t, colorToANSI("#GGGGGG"))
	assert.Empty(t, colorToANSI(""))
}

type countingSink struct {
	Null
	reveals []string
	status  int
}

func (c *countingSink) RevealText(text string) { c.reveals = append(c.reveals, text) }
func (c *countingSink) ShowStatus(_, _ string) { c.status++ }

func TestMultiFansOut(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	m := Multi{a, b}

	m.RevealText("hello")
	m.ShowStatus("one", "two")
	m.ShowButtons() // covered by Null on both

	require.Equal(t, []string{"hello"}, a.reveals)
	require.Equal(t, []string{"hello"}, b.reveals)
	assert.Equal(t, 1, a.status)
	assert.Equal(t, 1, b.status)
}

func TestNullImplementsSink(t *testing.T) {
	var _ Sink = Null{}
	var _ Sink = Multi{}
	var _ Sink = (*Terminal)(nil)
	var _ Sink = (*ValkeyTranscript)(nil)
	var _ Sink = (*KafkaEvents)(nil)
}
