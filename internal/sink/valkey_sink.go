package sink

import (
	"context"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/farsignal/internal/clients"
)

const (
	// TRANSCRIPT_WINDOW is how many emitted lines the rolling transcript
	// keeps; older lines are trimmed away.
	TRANSCRIPT_WINDOW = 20

	VALKEY_TRANSCRIPT_KEY = "farsignal:session:transcript"

	transcriptTTLSeconds = 86400
	transcriptOpTimeout  = 2 * time.Second
)

// ValkeyTranscript records revealed phrases and terminal-mode lines into a
// rolling window list. Every other event is ignored.
type ValkeyTranscript struct {
	Null
	vc *clients.ValkeyClient
}

func NewValkeyTranscript(vc *clients.ValkeyClient) *ValkeyTranscript {
	return &ValkeyTranscript{vc: vc}
}

func (v *ValkeyTranscript) RevealText(fullText string) {
	v.push(fullText)
}

func (v *ValkeyTranscript) EmitOverloadLine(text, _ string) {
	v.push(text)
}

func (v *ValkeyTranscript) EmitLostSignalMessage(text string) {
	v.push(text)
}

func (v *ValkeyTranscript) push(line string) {
	ctx, cancel := context.WithTimeout(context.Background(), transcriptOpTimeout)
	defer cancel()

	results := v.vc.DoMultiWithRetry(ctx, []valkey.Completed{
		v.vc.Client.B().Lpush().Key(VALKEY_TRANSCRIPT_KEY).Element(line).Build(),
		v.vc.Client.B().Ltrim().Key(VALKEY_TRANSCRIPT_KEY).Start(0).Stop(TRANSCRIPT_WINDOW - 1).Build(),
		v.vc.Client.B().Expire().Key(VALKEY_TRANSCRIPT_KEY).Seconds(transcriptTTLSeconds).Build(),
	}, 3)
	for _, res := range results {
		if err := res.Error(); err != nil {
			slog.Warn("[ValkeyTranscript] Failed to record line",
				slog.String("error", err.Error()))
			return
		}
	}
}

// Recent returns the newest lines in the window, newest first.
func (v *ValkeyTranscript) Recent(ctx context.Context) ([]string, error) {
	res := v.vc.DoWithRetry(ctx, v.vc.Client.B().Lrange().Key(VALKEY_TRANSCRIPT_KEY).Start(0).Stop(TRANSCRIPT_WINDOW-1).Build(), 3)
	if err := res.Error(); err != nil {
		return nil, err
	}
	return res.AsStrSlice()
}
