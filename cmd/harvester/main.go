package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spacesedan/farsignal/config"
	"github.com/spacesedan/farsignal/internal/clients"
	"github.com/spacesedan/farsignal/internal/clients/kafka_client"
	"github.com/spacesedan/farsignal/internal/db"
	"github.com/spacesedan/farsignal/internal/logging"
	"github.com/spacesedan/farsignal/internal/models"
	"github.com/spacesedan/farsignal/internal/titles"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	for {
		err := kafka_client.InitKafkaProducer(kafka_client.GetKafkaConfig())
		if err == nil {
			break
		}
		slog.Warn("[Harvester] Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseKafkaProducer()

	clients.InitValkey()
	defer clients.CloseValkey()

	db.InitDynamoDB()

	harvestInterval, err := strconv.Atoi(os.Getenv("HARVEST_INTERVAL"))
	if err != nil {
		harvestInterval = 1800 // Default to 30 minutes (in seconds)
	}

	harvestTicker := time.NewTicker(time.Duration(harvestInterval) * time.Second)
	defer harvestTicker.Stop()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	ctx := context.Background()

	// Harvest once on startup
	harvestAll(ctx)

	for {
		select {
		case <-harvestTicker.C:
			harvestAll(ctx)
		case <-stopChan:
			slog.Info("[Harvester] Shutting down")
			return
		}
	}
}

func harvestAll(ctx context.Context) {
	sources := map[string]titles.Source{
		"reddit": titles.NewRedditSource(),
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		sources["openai"] = titles.NewOpenAISource()
	}

	for name, src := range sources {
		if err := harvest(ctx, name, src); err != nil {
			slog.Error("[Harvester] Harvest failed",
				slog.String("source", name),
				slog.String("error", err.Error()))
		}
	}
}

// harvest pulls titles from one source, drops ones already seen, stores the
// rest, and announces them on the harvested-titles topic.
func harvest(ctx context.Context, sourceName string, src titles.Source) error {
	raw, err := src.Titles(ctx)
	if err != nil {
		return err
	}

	vc := clients.GetValkeyClient()
	var fresh []models.HarvestedTitle
	for _, title := range raw {
		id := harvestID(title, sourceName)
		if vc.IsTitleProcessed(ctx, id) {
			continue
		}
		fresh = append(fresh, models.HarvestedTitle{
			ID:        id,
			Title:     title,
			Source:    sourceName,
			FetchedAt: time.Now().UTC(),
		})
	}

	if len(fresh) == 0 {
		slog.Info("[Harvester] Nothing new", slog.String("source", sourceName))
		return nil
	}

	if err := db.StoreHarvestedTitles(ctx, fresh); err != nil {
		return err
	}

	for _, title := range fresh {
		if err := kafka_client.Publish(kafka_client.KAFKA_TOPIC_HARVESTED_TITLES, title.ID, title); err != nil {
			slog.Error("[Harvester] Failed to publish title",
				slog.String("id", title.ID),
				slog.String("error", err.Error()))
			continue
		}
		if err := vc.MarkTitleProcessed(ctx, title.ID); err != nil {
			slog.Warn("[Harvester] Failed to mark title processed",
				slog.String("id", title.ID),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("[Harvester] Harvest complete",
		slog.String("source", sourceName),
		slog.Int("new_titles", len(fresh)))
	return nil
}

func harvestID(title, source string) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%s", source, title)))
	return hex.EncodeToString(h[:16])
}
