package titles

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spacesedan/farsignal/internal/db"
)

// ArchiveSource serves titles previously harvested into DynamoDB. Stored
// titles are already normalized, but normalization is cheap and keeps the
// invariant local.
type ArchiveSource struct{}

func NewArchiveSource() *ArchiveSource {
	return &ArchiveSource{}
}

func (a *ArchiveSource) Titles(ctx context.Context) ([]string, error) {
	harvested, err := db.GetAllHarvestedTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("[ArchiveSource] Failed to load harvest archive: %w", err)
	}

	seen := make(map[string]bool)
	var titles []string
	for _, h := range harvested {
		t := Normalize(h.Title)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		titles = append(titles, t)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("[ArchiveSource] Harvest archive is empty")
	}

	slog.Info("[ArchiveSource] Loaded archived titles", slog.Int("count", len(titles)))
	return titles, nil
}
