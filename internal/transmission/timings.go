package transmission

import "time"

// Timings are the delays that define the session's phase boundaries. They are
// contract values: the defaults mirror the presentation cadence the rest of
// the system is tuned against.
type Timings struct {
	// IntroDetection is the wait before the intro's signal-detection line.
	IntroDetection time.Duration
	// IntroPrompt is the additional wait before the investigate prompt.
	IntroPrompt time.Duration
	// DecodeDelay separates a cycle's incoming-transmission phase from the
	// signal-received phase that reveals the phrase.
	DecodeDelay time.Duration
	// PostReveal is the pause between reveal completion and the buttons.
	PostReveal time.Duration
	// NextCycle is the pause between a response and the next cycle.
	NextCycle time.Duration
	// TerminalSettle is the pause between hitting a distance bound and
	// entering the terminal mode.
	TerminalSettle time.Duration
	// TerminalControls is the wait before the restart control appears in a
	// terminal mode.
	TerminalControls time.Duration
	// OverloadCadence is the interval between signal-overload lines.
	OverloadCadence time.Duration
	// LostSignalCadence is the interval between lost-signal messages.
	LostSignalCadence time.Duration
}

func DefaultTimings() Timings {
	return Timings{
		IntroDetection:    3000 * time.Millisecond,
		IntroPrompt:       2000 * time.Millisecond,
		DecodeDelay:       1000 * time.Millisecond,
		PostReveal:        500 * time.Millisecond,
		NextCycle:         500 * time.Millisecond,
		TerminalSettle:    1000 * time.Millisecond,
		TerminalControls:  5000 * time.Millisecond,
		OverloadCadence:   1200 * time.Millisecond,
		LostSignalCadence: 3000 * time.Millisecond,
	}
}
