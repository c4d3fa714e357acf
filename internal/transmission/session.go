// Package transmission owns the session state machine: the distance counter,
// the phase sequencing of each transmission cycle, and the two terminal
// presentation modes.
package transmission

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/spacesedan/farsignal/internal/sentiment"
	"github.com/spacesedan/farsignal/internal/sink"
)

// Mode is the session's current state.
type Mode string

const (
	ModeIntro            Mode = "intro"
	ModeCycling          Mode = "cycling"
	ModeAwaitingResponse Mode = "awaiting_response"
	ModeSignalOverload   Mode = "signal_overload"
	ModeLostSignal       Mode = "lost_signal"
)

// Choice is a user's answer to a transmission.
type Choice string

const (
	ChoiceAccept Choice = "accept"
	ChoiceReject Choice = "reject"
)

// Distance bounds. Saturating: responses at a bound never push past it.
const (
	MinDistance = -5
	MaxDistance = 10
)

const phrasePrefix = "does anybody else "

const (
	statusIncoming   = "incoming transmission"
	statusScanning   = "scanning..."
	statusReceived   = "signal received"
	statusDecoding   = "decoding..."
	statusComplete   = "transmission complete"
	statusAwaiting   = "awaiting response"
	statusResponded  = "response received"
	statusProcessing = "processing..."
)

var lostSignalMessages = []string{
	"NO SIGNAL DETECTED",
	"YOU ARE NOW OUTSIDE THE RANGE OF HUMAN COMMUNICATION",
	"...",
	"IT'S QUIET OUT HERE",
}

// ErrEmptyTitleSource means the session was handed no titles to transmit.
// That is a configuration error, not a runtime condition to fall back from.
var ErrEmptyTitleSource = errors.New("transmission: empty title source")

// Config assembles a session. Titles must be non-empty; zero-value Timings
// and a nil Scheduler or Sink fall back to defaults.
type Config struct {
	Titles    []string
	Sink      sink.Sink
	Timings   Timings
	Scheduler Scheduler
	Rand      *rand.Rand
}

// Session is the single mutable state machine instance. All state mutation
// happens under one lock, through the operations below; scheduled callbacks
// re-validate the epoch and mode before acting, so a timer left over from a
// superseded cycle or a prior restart lands as a no-op.
type Session struct {
	mu sync.Mutex

	mode     Mode
	distance int
	started  bool

	current       *sentiment.Result
	currentTitle  string
	currentPhrase string

	// Cursors for the terminal modes' emission sequences.
	overloadIdx int
	lostIdx     int

	titles  []string
	snk     sink.Sink
	timings Timings
	sched   Scheduler
	rng     *rand.Rand

	epoch       uint64
	timers      map[uint64]Timer
	nextTimerID uint64
}

func NewSession(cfg Config) (*Session, error) {
	if len(cfg.Titles) == 0 {
		return nil, ErrEmptyTitleSource
	}
	if cfg.Sink == nil {
		cfg.Sink = sink.Null{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = realScheduler{}
	}
	if cfg.Timings == (Timings{}) {
		cfg.Timings = DefaultTimings()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Session{
		mode:    ModeIntro,
		titles:  cfg.Titles,
		snk:     cfg.Sink,
		timings: cfg.Timings,
		sched:   cfg.Scheduler,
		rng:     cfg.Rand,
		timers:  make(map[uint64]Timer),
	}, nil
}

// Start plays the intro sequence. Valid once per session lifetime; Restart
// re-arms it.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeIntro || s.started {
		return
	}
	s.started = true
	s.startIntroLocked()
}

func (s *Session) startIntroLocked() {
	s.snk.SetEarthLevel(s.distance)
	s.schedule(s.timings.IntroDetection, func() {
		if s.mode != ModeIntro {
			return
		}
		s.snk.ShowSignalDetection()
		s.schedule(s.timings.IntroPrompt, func() {
			if s.mode != ModeIntro {
				return
			}
			s.snk.ShowInvestigatePrompt()
		})
	})
}

// Begin leaves the intro and starts the first transmission cycle. A no-op in
// any mode but intro.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeIntro {
		return nil
	}
	s.mode = ModeCycling
	slog.Info("[Transmission] Session engaged")
	return s.cycleLocked()
}

// RunTransmissionCycle starts a cycle. A no-op unless the session is cycling
// (not awaiting a response, not in a terminal mode, not still in the intro).
func (s *Session) RunTransmissionCycle() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycleLocked()
}

func (s *Session) cycleLocked() error {
	if s.mode != ModeCycling {
		return nil
	}
	if len(s.titles) == 0 {
		return ErrEmptyTitleSource
	}

	s.currentTitle = s.titles[s.rng.Intn(len(s.titles))]
	s.currentPhrase = phrasePrefix + s.currentTitle
	result := sentiment.Analyze(s.currentPhrase)
	s.current = &result

	slog.Debug("[Transmission] Incoming transmission",
		slog.String("title", s.currentTitle),
		slog.String("emotion", string(result.Emotion)))

	s.snk.ShowStatus(statusIncoming, statusScanning)
	s.snk.HideButtons()
	s.schedule(s.timings.DecodeDelay, s.decodePhase)
	return nil
}

// decodePhase reveals the phrase and schedules the buttons.
func (s *Session) decodePhase() {
	if s.mode != ModeCycling || s.current == nil {
		return
	}
	s.snk.ShowStatus(statusReceived, statusDecoding)
	s.snk.RevealText(s.currentPhrase)

	result := *s.current
	s.snk.ShowSentimentIndicator(result.Emotion,
		sentiment.EmotionColor(result.Emotion),
		int(result.Confidence*100+0.5))

	s.schedule(s.timings.PostReveal, s.buttonsPhase)
}

func (s *Session) buttonsPhase() {
	if s.mode != ModeCycling {
		return
	}
	s.snk.ShowStatus(statusComplete, statusAwaiting)
	s.snk.ShowButtons()
	s.mode = ModeAwaitingResponse
}

// Respond handles an accept/reject. A no-op unless a response is awaited.
// Exactly one of the three outcomes runs: signal overload at the upper bound,
// lost signal at the lower bound, or the next cycle.
func (s *Session) Respond(choice Choice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeAwaitingResponse {
		return
	}
	s.mode = ModeCycling

	switch choice {
	case ChoiceAccept:
		if s.distance < MaxDistance {
			s.distance++
		}
	case ChoiceReject:
		if s.distance > MinDistance {
			s.distance--
		}
	default:
		// Unknown choice leaves the distance alone but still re-enters
		// the cycle, mirroring a response with no effect.
	}

	s.snk.HideButtons()
	s.snk.SetEarthLevel(s.distance)

	slog.Info("[Transmission] Response received",
		slog.String("choice", string(choice)),
		slog.Int("distance", s.distance))

	if s.distance >= MaxDistance {
		s.schedule(s.timings.TerminalSettle, s.enterSignalOverload)
		return
	}
	if s.distance <= MinDistance {
		s.schedule(s.timings.TerminalSettle, s.enterLostSignal)
		return
	}

	s.clearCurrentLocked()
	s.snk.ClearSentimentIndicator()
	s.snk.ShowStatus(statusResponded, statusProcessing)
	s.schedule(s.timings.NextCycle, func() {
		if err := s.cycleLocked(); err != nil {
			slog.Error("[Transmission] Failed to start next cycle",
				slog.String("error", err.Error()))
		}
	})
}

// Restart returns the session to a fresh intro state. Every outstanding
// timer is canceled, and the epoch bump invalidates any callback already in
// flight.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}

	s.mode = ModeIntro
	s.distance = 0
	s.started = true
	s.overloadIdx = 0
	s.lostIdx = 0
	s.clearCurrentLocked()

	s.snk.ClearSentimentIndicator()
	slog.Info("[Transmission] Session restarted")
	s.startIntroLocked()
}

func (s *Session) clearCurrentLocked() {
	s.current = nil
	s.currentTitle = ""
	s.currentPhrase = ""
}

// schedule defers fn. The callback takes the session lock, discards itself if
// the epoch moved on, then runs with the lock held. Callers hold the lock.
func (s *Session) schedule(d time.Duration, fn func()) {
	epoch := s.epoch
	id := s.nextTimerID
	s.nextTimerID++
	s.timers[id] = s.sched.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.timers, id)
		if s.epoch != epoch {
			return
		}
		fn()
	})
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Distance returns the current distance counter.
func (s *Session) Distance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.distance
}

// CurrentSentiment returns the most recent sentiment result, if a
// transmission is in flight.
func (s *Session) CurrentSentiment() (sentiment.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return sentiment.Result{}, false
	}
	return *s.current, true
}

// CurrentTitle returns the title of the transmission in flight, or "".
func (s *Session) CurrentTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTitle
}

// CurrentPhrase returns the full derived phrase in flight, or "".
func (s *Session) CurrentPhrase() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPhrase
}
