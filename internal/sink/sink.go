// Package sink carries presentation events out of a transmission session.
// The session tells a sink what happened; how (or whether) anything is drawn
// is the sink's business.
package sink

import "github.com/spacesedan/farsignal/internal/sentiment"

// Sink receives the presentation events of one session. Implementations must
// not call back into the session; events arrive from inside its state lock.
type Sink interface {
	// ShowStatus updates the two HUD labels.
	ShowStatus(transmissionLabel, systemLabel string)
	// RevealText presents a full phrase. The reveal is complete when the
	// call returns; pacing (typewriter effects and so on) is up to the sink.
	RevealText(fullText string)
	// SetEarthLevel reports the current distance, -5 to 10.
	SetEarthLevel(distance int)
	ShowButtons()
	HideButtons()
	EmitOverloadLine(text, color string)
	EmitLostSignalMessage(text string)
	ShowSentimentIndicator(emotion sentiment.Emotion, color string, confidencePercent int)
	ClearSentimentIndicator()
	// Intro and terminal-mode surface controls.
	ShowSignalDetection()
	ShowInvestigatePrompt()
	ShowRestartControl()
}

// Null discards every event. Useful in tests and as an embedding base for
// sinks that only care about a few events.
type Null struct{}

func (Null) ShowStatus(string, string)                            {}
func (Null) RevealText(string)                                    {}
func (Null) SetEarthLevel(int)                                    {}
func (Null) ShowButtons()                                         {}
func (Null) HideButtons()                                         {}
func (Null) EmitOverloadLine(string, string)                      {}
func (Null) EmitLostSignalMessage(string)                         {}
func (Null) ShowSentimentIndicator(sentiment.Emotion, string, int) {}
func (Null) ClearSentimentIndicator()                             {}
func (Null) ShowSignalDetection()                                 {}
func (Null) ShowInvestigatePrompt()                               {}
func (Null) ShowRestartControl()                                  {}

// Multi fans every event out to each wrapped sink, in order.
type Multi []Sink

func (m Multi) ShowStatus(t, s string) {
	for _, snk := range m {
		snk.ShowStatus(t, s)
	}
}

func (m Multi) RevealText(text string) {
	for _, snk := range m {
		snk.RevealText(text)
	}
}

func (m Multi) SetEarthLevel(distance int) {
	for _, snk := range m {
		snk.SetEarthLevel(distance)
	}
}

func (m Multi) ShowButtons() {
	for _, snk := range m {
		snk.ShowButtons()
	}
}

func (m Multi) HideButtons() {
	for _, snk := range m {
		snk.HideButtons()
	}
}

func (m Multi) EmitOverloadLine(text, color string) {
	for _, snk := range m {
		snk.EmitOverloadLine(text, color)
	}
}

func (m Multi) EmitLostSignalMessage(text string) {
	for _, snk := range m {
		snk.EmitLostSignalMessage(text)
	}
}

func (m Multi) ShowSentimentIndicator(emotion sentiment.Emotion, color string, confidencePercent int) {
	for _, snk := range m {
		snk.ShowSentimentIndicator(emotion, color, confidencePercent)
	}
}

func (m Multi) ClearSentimentIndicator() {
	for _, snk := range m {
		snk.ClearSentimentIndicator()
	}
}

func (m Multi) ShowSignalDetection() {
	for _, snk := range m {
		snk.ShowSignalDetection()
	}
}

func (m Multi) ShowInvestigatePrompt() {
	for _, snk := range m {
		snk.ShowInvestigatePrompt()
	}
}

func (m Multi) ShowRestartControl() {
	for _, snk := range m {
		snk.ShowRestartControl()
	}
}
