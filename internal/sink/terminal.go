package sink

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spacesedan/farsignal/internal/sentiment"
)

const (
	defaultTypeDelay = 20 * time.Millisecond

	ansiReset = "\x1b[0m"
	ansiDim   = "\x1b[2m"
	ansiBold  = "\x1b[1m"
)

// Terminal renders session events as ANSI-colored lines. The phrase reveal is
// a typewriter effect, one character per typeDelay.
type Terminal struct {
	mu        sync.Mutex
	out       io.Writer
	typeDelay time.Duration
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out, typeDelay: defaultTypeDelay}
}

func (t *Terminal) ShowStatus(transmissionLabel, systemLabel string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s[ %s | %s ]%s\n", ansiDim, strings.ToUpper(transmissionLabel), systemLabel, ansiReset)
}

func (t *Terminal) RevealText(fullText string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range fullText {
		fmt.Fprintf(t.out, "%c", r)
		if t.typeDelay > 0 {
			time.Sleep(t.typeDelay)
		}
	}
	fmt.Fprintln(t.out)
}

func (t *Terminal) SetEarthLevel(distance int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Distance meter: -5 .. 0 .. 10, earth on the right.
	const span = 16
	pos := distance + 5
	meter := strings.Repeat("-", pos) + "*" + strings.Repeat("-", span-pos-1)
	fmt.Fprintf(t.out, "%ssignal [%s] earth (%+d)%s\n", ansiDim, meter, distance, ansiReset)
}

func (t *Terminal) ShowButtons() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s(y) yes, me too   (n) no, not really%s\n", ansiBold, ansiReset)
}

func (t *Terminal) HideButtons() {}

func (t *Terminal) EmitOverloadLine(text, color string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s%s%s\n", colorToANSI(color), text, ansiReset)
}

func (t *Terminal) EmitLostSignalMessage(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s%s%s\n", ansiDim, text, ansiReset)
}

func (t *Terminal) ShowSentimentIndicator(emotion sentiment.Emotion, color string, confidencePercent int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s● %s (%d%%)%s\n", colorToANSI(color), emotion, confidencePercent, ansiReset)
}

func (t *Terminal) ClearSentimentIndicator() {}

func (t *Terminal) ShowSignalDetection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%sFAINT SIGNAL DETECTED%s\n", ansiBold, ansiReset)
}

func (t *Terminal) ShowInvestigatePrompt() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s(enter) investigate%s\n", ansiBold, ansiReset)
}

func (t *Terminal) ShowRestartControl() {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s(r) start over%s\n", ansiBold, ansiReset)
}

// colorToANSI converts a #RRGGBB color token into a truecolor escape. Unknown
// tokens render unstyled.
func colorToANSI(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}
