package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spacesedan/farsignal/config"
	"github.com/spacesedan/farsignal/internal/clients"
	"github.com/spacesedan/farsignal/internal/clients/kafka_client"
	"github.com/spacesedan/farsignal/internal/db"
	"github.com/spacesedan/farsignal/internal/logging"
	"github.com/spacesedan/farsignal/internal/models"
	"github.com/spacesedan/farsignal/internal/sink"
	"github.com/spacesedan/farsignal/internal/titles"
	"github.com/spacesedan/farsignal/internal/transmission"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx := context.Background()

	corpus := loadTitles(ctx)

	snk, cleanup := buildSink()
	defer cleanup()

	var archiver *db.Archiver
	if os.Getenv("ARCHIVE_ENABLED") == "true" {
		db.InitDynamoDB()
		archiver = db.NewArchiver()
		defer archiver.Flush(ctx)
	}

	session, err := transmission.NewSession(transmission.Config{
		Titles: corpus,
		Sink:   snk,
	})
	if err != nil {
		slog.Error("[Transmission] Failed to create session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopChan
		slog.Info("[Transmission] Shutting down")
		if archiver != nil {
			archiver.Flush(ctx)
		}
		cleanup()
		os.Exit(0)
	}()

	session.Start()

	fmt.Println()
	fmt.Println("  [enter/i] investigate   [y] yes   [n] no   [r] restart   [q] quit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "i":
			if err := session.Begin(); err != nil {
				slog.Error("[Transmission] Failed to begin session",
					slog.String("error", err.Error()))
			}
		case "y":
			respond(ctx, session, archiver, transmission.ChoiceAccept)
		case "n":
			respond(ctx, session, archiver, transmission.ChoiceReject)
		case "r":
			session.Restart()
		case "q":
			if archiver != nil {
				archiver.Flush(ctx)
			}
			return
		}
	}
}

// respond captures the in-flight transmission before the session clears it,
// then archives the response.
func respond(ctx context.Context, session *transmission.Session, archiver *db.Archiver, choice transmission.Choice) {
	result, ok := session.CurrentSentiment()
	title := session.CurrentTitle()
	phrase := session.CurrentPhrase()

	session.Respond(choice)

	if archiver == nil || !ok {
		return
	}
	archiver.Add(ctx, models.TransmissionRecord{
		Title:       title,
		Phrase:      phrase,
		Choice:      string(choice),
		Distance:    session.Distance(),
		Score:       result.Score,
		Magnitude:   result.Magnitude,
		Emotion:     string(result.Emotion),
		Confidence:  result.Confidence,
		RespondedAt: time.Now().UTC(),
	})
}

// loadTitles resolves the corpus per TITLE_SOURCE, falling back to the
// embedded list when a remote source fails.
func loadTitles(ctx context.Context) []string {
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
		slog.Warn("[Transmission] Title source failed, using embedded corpus",
			slog.String("error", err.Error()))
		corpus, _ = titles.Default().Titles(ctx)
	}
	return corpus
}

// buildSink assembles the terminal sink plus any enabled fan-out targets.
// The returned cleanup tears down whatever was initialized.
func buildSink() (sink.Sink, func()) {
	sinks := sink.Multi{sink.NewTerminal(os.Stdout)}
	var cleanups []func()

	if os.Getenv("VALKEY_TRANSCRIPT_ENABLED") == "true" {
		vc := clients.InitValkey()
		sinks = append(sinks, sink.NewValkeyTranscript(vc))
		cleanups = append(cleanups, clients.CloseValkey)
	}

	if os.Getenv("KAFKA_EVENTS_ENABLED") == "true" {
		if err := kafka_client.InitKafkaProducer(kafka_client.GetKafkaConfig()); err != nil {
			slog.Error("[Transmission] Kafka init failed, events disabled",
				slog.String("error", err.Error()))
		} else {
			sessionID := fmt.Sprintf("session-%d", time.Now().Unix())
			sinks = append(sinks, sink.NewKafkaEvents(sessionID))
			cleanups = append(cleanups, kafka_client.CloseKafkaProducer)
		}
	}

	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}
	return sinks, cleanup
}
