package sink

import (
	"log/slog"
	"time"

	"github.com/spacesedan/farsignal/internal/clients/kafka_client"
	"github.com/spacesedan/farsignal/internal/models"
	"github.com/spacesedan/farsignal/internal/sentiment"
)

// KafkaEvents publishes every session event as JSON to the session events
// topic. Publish failures are logged and dropped; the session never blocks on
// the broker.
type KafkaEvents struct {
	SessionID string
}

func NewKafkaEvents(sessionID string) *KafkaEvents {
	return &KafkaEvents{SessionID: sessionID}
}

func (k *KafkaEvents) publish(event models.SessionEvent) {
	event.Timestamp = time.Now().UTC()
	if err := kafka_client.Publish(kafka_client.KAFKA_TOPIC_SESSION_EVENTS, k.SessionID, event); err != nil {
		slog.Warn("[KafkaEvents] Dropped session event",
			slog.String("type", event.Type),
			slog.String("error", err.Error()))
	}
}

func (k *KafkaEvents) ShowStatus(transmissionLabel, systemLabel string) {
	k.publish(models.SessionEvent{
		Type:              models.EventShowStatus,
		TransmissionLabel: transmissionLabel,
		SystemLabel:       systemLabel,
	})
}

func (k *KafkaEvents) RevealText(fullText string) {
	k.publish(models.SessionEvent{Type: models.EventRevealText, Text: fullText})
}

func (k *KafkaEvents) SetEarthLevel(distance int) {
	k.publish(models.SessionEvent{Type: models.EventEarthLevel, Distance: distance})
}

func (k *KafkaEvents) ShowButtons() {
	k.publish(models.SessionEvent{Type: models.EventShowButtons})
}

func (k *KafkaEvents) HideButtons() {
	k.publish(models.SessionEvent{Type: models.EventHideButtons})
}

func (k *KafkaEvents) EmitOverloadLine(text, color string) {
	k.publish(models.SessionEvent{Type: models.EventOverloadLine, Text: text, Color: color})
}

func (k *KafkaEvents) EmitLostSignalMessage(text string) {
	k.publish(models.SessionEvent{Type: models.EventLostSignalMessage, Text: text})
}

func (k *KafkaEvents) ShowSentimentIndicator(emotion sentiment.Emotion, color string, confidencePercent int) {
	k.publish(models.SessionEvent{
		Type:              models.EventSentimentIndicator,
		Emotion:           string(emotion),
		Color:             color,
		ConfidencePercent: confidencePercent,
	})
}

func (k *KafkaEvents) ClearSentimentIndicator() {
	k.publish(models.SessionEvent{Type: models.EventSentimentCleared})
}

func (k *KafkaEvents) ShowSignalDetection() {
	k.publish(models.SessionEvent{Type: models.EventSignalDetection})
}

func (k *KafkaEvents) ShowInvestigatePrompt() {
	k.publish(models.SessionEvent{Type: models.EventInvestigatePrompt})
}

func (k *KafkaEvents) ShowRestartControl() {
	k.publish(models.SessionEvent{Type: models.EventRestartControl})
}
