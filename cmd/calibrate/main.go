// Command calibrate runs the lexicon analyzer and VADER side by side over a
// title corpus and reports where the two disagree. Useful when tuning lexicon
// weights against new harvested material.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/farsignal/config"
	"github.com/spacesedan/farsignal/internal/logging"
	"github.com/spacesedan/farsignal/internal/sentiment"
	"github.com/spacesedan/farsignal/internal/titles"
)

const phrasePrefix = "does anybody else "

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx := context.Background()

	var src titles.Source
	switch os.Getenv("TITLE_SOURCE") {
	case "reddit":
		src = titles.NewRedditSource()
	case "openai":
		src = titles.NewOpenAISource()
	case "archive":
		src = titles.NewArchiveSource()
	default:
		src = titles.Default()
	}

	corpus, err := src.Titles(ctx)
	if err != nil {
		slog.Error("[Calibrate] Failed to load titles", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var agreements, divergences int
	fmt.Printf("%-55s %-12s %-10s %-10s\n", "PHRASE", "EMOTION", "LEXICON", "VADER")

	for _, title := range corpus {
		phrase := phrasePrefix + title
		result := sentiment.Analyze(phrase)
		lexiconLabel := labelFromScore(result.Score)
		_, vaderLabel := sentiment.AnalyzeWithVADER(phrase)

		marker := " "
		if lexiconLabel != vaderLabel {
			marker = "*"
			divergences++
		} else {
			agreements++
		}

		fmt.Printf("%-55s %-12s %-10s %-10s %s\n",
			truncate(phrase, 53), result.Emotion, lexiconLabel, vaderLabel, marker)
	}

	total := agreements + divergences
	fmt.Printf("\n%d phrases, %d agree, %d diverge (%.0f%% agreement)\n",
		total, agreements, divergences, float64(agreements)/float64(total)*100)
}

func labelFromScore(score float64) string {
	switch {
	case score > 0:
		return "positive"
	case score < 0:
		return "negative"
	default:
		return "neutral"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
