package models

import "time"

// TransmissionRecord is one responded transmission, as archived to DynamoDB.
type TransmissionRecord struct {
	Title       string    `json:"title"`
	Phrase      string    `json:"phrase"`
	Choice      string    `json:"choice"`
	Distance    int       `json:"distance"`
	Score       float64   `json:"score"`
	Magnitude   float64   `json:"magnitude"`
	Emotion     string    `json:"emotion"`
	Confidence  float64   `json:"confidence"`
	RespondedAt time.Time `json:"responded_at"`
}

// SessionEvent is the generic presentation event published to Kafka. Only the
// fields relevant to the event type are set.
type SessionEvent struct {
	Type              string    `json:"type"`
	TransmissionLabel string    `json:"transmission_label,omitempty"`
	SystemLabel       string    `json:"system_label,omitempty"`
	Text              string    `json:"text,omitempty"`
	Color             string    `json:"color,omitempty"`
	Distance          int       `json:"distance"`
	Emotion           string    `json:"emotion,omitempty"`
	ConfidencePercent int       `json:"confidence_percent,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// Session event types carried in SessionEvent.Type.
const (
	EventShowStatus         = "show_status"
	EventRevealText         = "reveal_text"
	EventEarthLevel         = "earth_level"
	EventShowButtons        = "show_buttons"
	EventHideButtons        = "hide_buttons"
	EventOverloadLine       = "overload_line"
	EventLostSignalMessage  = "lost_signal_message"
	EventSentimentIndicator = "sentiment_indicator"
	EventSentimentCleared   = "sentiment_cleared"
	EventSignalDetection    = "signal_detection"
	EventInvestigatePrompt  = "investigate_prompt"
	EventRestartControl     = "restart_control"
)
