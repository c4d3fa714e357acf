package transmission

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/farsignal/internal/sentiment"
)

// fakeScheduler runs callbacks on a virtual clock so tests never sleep.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	sched   *fakeScheduler
	at      time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{sched: f, at: f.now + d, seq: f.seq, fn: fn}
	f.seq++
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock to now+d, firing every callback due in that window
// in schedule order. The clock steps to each timer's due time before its
// callback runs, so a callback that re-arms itself keeps firing for as long
// as the window covers its cadence.
func (f *fakeScheduler) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()
	for {
		t := f.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}
	f.mu.Lock()
	f.now = target
	f.mu.Unlock()
}

func (f *fakeScheduler) nextDue(target time.Duration) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	var best *fakeTimer
	for _, t := range f.timers {
		if t.stopped || t.fired || t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	if best != nil {
		best.fired = true
		if best.at > f.now {
			f.now = best.at
		}
	}
	return best
}

// recordSink captures every event as a formatted line.
type recordSink struct {
	mu     sync.Mutex
	events []string
}

func (r *recordSink) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recordSink) ShowStatus(t, s string)   { r.add("status:%s/%s", t, s) }
func (r *recordSink) RevealText(text string)   { r.add("reveal:%s", text) }
func (r *recordSink) SetEarthLevel(d int)      { r.add("earth:%d", d) }
func (r *recordSink) ShowButtons()             { r.add("buttons:show") }
func (r *recordSink) HideButtons()             { r.add("buttons:hide") }
func (r *recordSink) EmitOverloadLine(text, color string) {
	r.add("overload:%s|%s", text, color)
}
func (r *recordSink) EmitLostSignalMessage(text string) { r.add("lost:%s", text) }
func (r *recordSink) ShowSentimentIndicator(e sentiment.Emotion, color string, pct int) {
	r.add("indicator:%s|%s|%d", e, color, pct)
}
func (r *recordSink) ClearSentimentIndicator() { r.add("indicator:clear") }
func (r *recordSink) ShowSignalDetection()     { r.add("intro:detection") }
func (r *recordSink) ShowInvestigatePrompt()   { r.add("intro:investigate") }
func (r *recordSink) ShowRestartControl()      { r.add("controls:restart") }

func (r *recordSink) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recordSink) withPrefix(prefix string) []string {
	var out []string
	for _, e := range r.all() {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	return out
}

func newTestSession(t *testing.T, titles []string) (*Session, *fakeScheduler, *recordSink) {
	t.Helper()
	fs := &fakeScheduler{}
	rs := &recordSink{}
	s, err := NewSession(Config{
		Titles:    titles,
		Sink:      rs,
		Scheduler: fs,
		Rand:      rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return s, fs, rs
}

// advanceToAwaiting pushes a cycling session through both phases.
func advanceToAwaiting(t *testing.T, s *Session, fs *fakeScheduler) {
	t.Helper()
	fs.Advance(s.timings.DecodeDelay)
	fs.Advance(s.timings.PostReveal)
	require.Equal(t, ModeAwaitingResponse, s.Mode())
}

func TestAdvanceUnrollsRearmingChain(t *testing.T) {
	fs := &fakeScheduler{}
	const cadence = 100 * time.Millisecond

	var fired []time.Duration
	var rearm func()
	rearm = func() {
		fired = append(fired, fs.now)
		fs.AfterFunc(cadence, rearm)
	}
	fs.AfterFunc(cadence, rearm)

	// One wide advance must fire every due re-armed callback, each at its
	// own due time, same as advancing one cadence at a time would.
	fs.Advance(3*cadence + cadence/2)
	assert.Equal(t, []time.Duration{cadence, 2 * cadence, 3 * cadence}, fired)

	fs.Advance(cadence)
	assert.Len(t, fired, 4)
}

func TestNewSessionRequiresTitles(t *testing.T) {
	_, err := NewSession(Config{Titles: nil})
	assert.ErrorIs(t, err, ErrEmptyTitleSource)
}

func TestIntroSequence(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})

	s.Start()
	assert.Equal(t, []string{"earth:0"}, rs.all())

	fs.Advance(s.timings.IntroDetection)
	assert.Contains(t, rs.all(), "intro:detection")
	assert.NotContains(t, rs.all(), "intro:investigate")

	fs.Advance(s.timings.IntroPrompt)
	assert.Contains(t, rs.all(), "intro:investigate")
	assert.Equal(t, ModeIntro, s.Mode())
}

func TestBeginBeforeIntroTimersSuppressesIntroEvents(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})
	s.Start()

	// Investigating before the detection timer fires leaves the intro
	// behind; its pending callbacks must not print into the cycling session.
	require.NoError(t, s.Begin())
	require.Equal(t, ModeCycling, s.Mode())

	fs.Advance(s.timings.IntroDetection + s.timings.IntroPrompt)
	assert.Empty(t, rs.withPrefix("intro:"))
}

func TestBeginStartsFirstCycle(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})

	require.NoError(t, s.Begin())
	assert.Equal(t, ModeCycling, s.Mode())
	assert.Contains(t, rs.all(), "status:incoming transmission/scanning...")

	advanceToAwaiting(t, s, fs)
	assert.Contains(t, rs.all(), "reveal:does anybody else feel lonely")
	assert.Contains(t, rs.all(), "buttons:show")

	got, ok := s.CurrentSentiment()
	require.True(t, ok)
	assert.Equal(t, sentiment.EmotionSadness, got.Emotion)
}

func TestBeginOutsideIntroIsNoop(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	before := len(rs.all())
	require.NoError(t, s.Begin())
	assert.Equal(t, before, len(rs.all()))
	assert.Equal(t, ModeAwaitingResponse, s.Mode())
}

func TestRespondMovesDistance(t *testing.T) {
	s, fs, _ := newTestSession(t, []string{"feel lonely", "notice the stars"})
	require.NoError(t, s.Begin())

	advanceToAwaiting(t, s, fs)
	s.Respond(ChoiceAccept)
	assert.Equal(t, 1, s.Distance())
	assert.Equal(t, ModeCycling, s.Mode())

	_, ok := s.CurrentSentiment()
	assert.False(t, ok, "sentiment cleared between cycles")

	fs.Advance(s.timings.NextCycle)
	advanceToAwaiting(t, s, fs)
	s.Respond(ChoiceReject)
	assert.Equal(t, 0, s.Distance())
}

func TestRespondOutsideAwaitingIsNoop(t *testing.T) {
	s, _, _ := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())

	// Still cycling: the decode phase has not run yet.
	s.Respond(ChoiceAccept)
	assert.Equal(t, 0, s.Distance())
	assert.Equal(t, ModeCycling, s.Mode())
}

func TestDistanceBoundsInvariant(t *testing.T) {
	s, fs, _ := newTestSession(t, []string{"feel lonely", "notice the stars"})
	require.NoError(t, s.Begin())

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50 && s.Mode() != ModeSignalOverload && s.Mode() != ModeLostSignal; i++ {
		advanceToAwaiting(t, s, fs)
		if rng.Intn(2) == 0 {
			s.Respond(ChoiceAccept)
		} else {
			s.Respond(ChoiceReject)
		}
		d := s.Distance()
		require.GreaterOrEqual(t, d, MinDistance)
		require.LessOrEqual(t, d, MaxDistance)
		fs.Advance(s.timings.NextCycle)
		fs.Advance(s.timings.TerminalSettle)
	}
}

func TestSaturationAndOverloadEntry(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	s.mu.Lock()
	s.distance = 9
	s.mu.Unlock()

	s.Respond(ChoiceAccept)
	assert.Equal(t, 10, s.Distance())
	assert.Equal(t, ModeCycling, s.Mode(), "overload entry waits for the settle delay")

	fs.Advance(s.timings.TerminalSettle)
	assert.Equal(t, ModeSignalOverload, s.Mode())
	require.NotEmpty(t, rs.withPrefix("overload:"))

	// Terminal exclusivity: responses change nothing now.
	s.Respond(ChoiceAccept)
	s.Respond(ChoiceReject)
	assert.Equal(t, 10, s.Distance())
	assert.Equal(t, ModeSignalOverload, s.Mode())
}

func TestOverloadRoundRobin(t *testing.T) {
	titles := []string{"one", "two", "three"}
	s, fs, rs := newTestSession(t, titles)
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	s.mu.Lock()
	s.distance = 9
	s.mu.Unlock()
	s.Respond(ChoiceAccept)
	fs.Advance(s.timings.TerminalSettle)

	fs.Advance(3 * s.timings.OverloadCadence)

	lines := rs.withPrefix("overload:")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "does anybody else one")
	assert.Contains(t, lines[1], "does anybody else two")
	assert.Contains(t, lines[2], "does anybody else three")
	assert.Contains(t, lines[3], "does anybody else one", "cursor wraps")

	for _, line := range lines {
		assert.Contains(t, line, "#", "each line carries a color token")
	}

	fs.Advance(s.timings.TerminalControls)
	assert.Contains(t, rs.all(), "controls:restart")
}

func TestLostSignalSequence(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	s.mu.Lock()
	s.distance = -4
	s.mu.Unlock()
	s.Respond(ChoiceReject)
	assert.Equal(t, -5, s.Distance())

	fs.Advance(s.timings.TerminalSettle)
	require.Equal(t, ModeLostSignal, s.Mode())

	fs.Advance(10 * s.timings.LostSignalCadence)
	assert.Equal(t, []string{
		"lost:NO SIGNAL DETECTED",
		"lost:YOU ARE NOW OUTSIDE THE RANGE OF HUMAN COMMUNICATION",
		"lost:...",
		"lost:IT'S QUIET OUT HERE",
	}, rs.withPrefix("lost:"), "exactly four messages, in order, then silence")

	s.Respond(ChoiceReject)
	assert.Equal(t, -5, s.Distance())
}

func TestRestartResetsExactly(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	s.mu.Lock()
	s.distance = 9
	s.mu.Unlock()
	s.Respond(ChoiceAccept)
	fs.Advance(s.timings.TerminalSettle)
	require.Equal(t, ModeSignalOverload, s.Mode())

	s.Restart()
	assert.Equal(t, ModeIntro, s.Mode())
	assert.Equal(t, 0, s.Distance())
	_, ok := s.CurrentSentiment()
	assert.False(t, ok)
	assert.Equal(t, "", s.CurrentTitle())

	// The overload emission chain must be dead: advancing far produces no
	// further overload lines.
	before := len(rs.withPrefix("overload:"))
	fs.Advance(20 * s.timings.OverloadCadence)
	assert.Equal(t, before, len(rs.withPrefix("overload:")))

	// And the intro plays again.
	assert.Contains(t, rs.withPrefix("intro:"), "intro:detection")
}

func TestRestartCancelsPendingCycle(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	s.Respond(ChoiceAccept)
	s.Restart()

	incomingBefore := len(rs.withPrefix("status:incoming"))
	fs.Advance(10 * s.timings.NextCycle)
	assert.Equal(t, incomingBefore, len(rs.withPrefix("status:incoming")),
		"a pending next-cycle timer must not fire into the restarted session")
	assert.Equal(t, ModeIntro, s.Mode())
}

func TestRestartThenFullRunWorks(t *testing.T) {
	s, fs, _ := newTestSession(t, []string{"feel lonely"})
	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)
	s.Respond(ChoiceAccept)

	s.Restart()
	fs.Advance(s.timings.IntroDetection + s.timings.IntroPrompt)

	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)
	s.Respond(ChoiceAccept)
	assert.Equal(t, 1, s.Distance())
}

func TestRunTransmissionCycleGuards(t *testing.T) {
	s, fs, rs := newTestSession(t, []string{"feel lonely"})

	// Intro: no-op.
	require.NoError(t, s.RunTransmissionCycle())
	assert.Empty(t, rs.withPrefix("status:"))

	require.NoError(t, s.Begin())
	advanceToAwaiting(t, s, fs)

	// Awaiting a response: also a no-op.
	before := len(rs.all())
	require.NoError(t, s.RunTransmissionCycle())
	assert.Equal(t, before, len(rs.all()))
}
