package transmission

import (
	"log/slog"

	"github.com/spacesedan/farsignal/internal/sentiment"
)

// enterSignalOverload switches to the signal-overload terminal mode: titles
// stream out round-robin (sequential, wrapping — not random) at a fixed
// cadence until Restart. Runs with the session lock held.
func (s *Session) enterSignalOverload() {
	if s.mode == ModeSignalOverload || s.mode == ModeLostSignal {
		return
	}
	s.mode = ModeSignalOverload
	s.overloadIdx = 0
	s.clearCurrentLocked()
	s.snk.ClearSentimentIndicator()

	slog.Info("[Transmission] Signal overload", slog.Int("distance", s.distance))

	s.schedule(s.timings.TerminalControls, func() {
		s.snk.ShowRestartControl()
	})
	s.emitOverloadLine()
}

// emitOverloadLine emits one line and re-arms itself. The mode guard stops
// the chain once the session leaves overload.
func (s *Session) emitOverloadLine() {
	if s.mode != ModeSignalOverload {
		return
	}

	line := phrasePrefix + s.titles[s.overloadIdx]
	result := sentiment.Analyze(line)
	s.snk.EmitOverloadLine(line, sentiment.EmotionColor(result.Emotion))

	s.overloadIdx = (s.overloadIdx + 1) % len(s.titles)
	s.schedule(s.timings.OverloadCadence, s.emitOverloadLine)
}

// enterLostSignal switches to the lost-signal terminal mode: four fixed
// messages, one per interval, then silence until Restart. Runs with the
// session lock held.
func (s *Session) enterLostSignal() {
	if s.mode == ModeSignalOverload || s.mode == ModeLostSignal {
		return
	}
	s.mode = ModeLostSignal
	s.lostIdx = 0
	s.clearCurrentLocked()
	s.snk.ClearSentimentIndicator()

	slog.Info("[Transmission] Signal lost", slog.Int("distance", s.distance))

	s.schedule(s.timings.TerminalControls, func() {
		s.snk.ShowRestartControl()
	})
	s.emitLostSignalMessage()
}

func (s *Session) emitLostSignalMessage() {
	if s.mode != ModeLostSignal || s.lostIdx >= len(lostSignalMessages) {
		return
	}

	s.snk.EmitLostSignalMessage(lostSignalMessages[s.lostIdx])
	s.lostIdx++

	if s.lostIdx < len(lostSignalMessages) {
		s.schedule(s.timings.LostSignalCadence, s.emitLostSignalMessage)
	}
}
