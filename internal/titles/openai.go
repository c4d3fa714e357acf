package titles

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/spacesedan/farsignal/internal/clients"
)

const (
	defaultGeneratedCount = 25
	generationRetries     = 3
	generationBackoff     = 2 * time.Second
)

const generationPrompt = `Generate %d short clauses that each complete the sentence "does anybody else ...".
They should describe small, relatable human experiences with a mix of emotional tones: lonely, anxious, joyful, peaceful, frustrated.
Lowercase, no leading "does anybody else", no trailing punctuation.
Respond with ONLY a JSON array of strings.`

// OpenAISource generates fresh completions with a chat model.
type OpenAISource struct {
	Count int
	Model string
}

func NewOpenAISource() *OpenAISource {
	return &OpenAISource{
		Count: defaultGeneratedCount,
		Model: openai.GPT4oMini,
	}
}

func (o *OpenAISource) Titles(ctx context.Context) ([]string, error) {
	client := clients.GetOpenAIClient().Client
	prompt := fmt.Sprintf(generationPrompt, o.Count)

	var lastErr error
	for attempt := 1; attempt <= generationRetries; attempt++ {
		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: o.Model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.9,
		})
		if err != nil {
			lastErr = err
			slog.Warn("[OpenAISource] Completion request failed",
				slog.Int("attempt", attempt), slog.String("error", err.Error()))
			time.Sleep(generationBackoff)
			continue
		}

		titles, err := parseGenerated(resp.Choices[0].Message.Content)
		if err != nil {
			lastErr = err
			slog.Warn("[OpenAISource] Unparseable completion",
				slog.Int("attempt", attempt), slog.String("error", err.Error()))
			continue
		}

		slog.Info("[OpenAISource] Generated titles", slog.Int("count", len(titles)))
		return titles, nil
	}
	return nil, fmt.Errorf("[OpenAISource] Generation failed after %d attempts: %w",
		generationRetries, lastErr)
}

// parseGenerated unwraps an optional markdown code fence and decodes the JSON
// array the model was asked for.
func parseGenerated(content string) ([]string, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	var raw []string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON array: %w", err)
	}

	var titles []string
	for _, t := range raw {
		if n := Normalize(t); n != "" {
			titles = append(titles, n)
		}
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("empty title list")
	}
	return titles, nil
}
