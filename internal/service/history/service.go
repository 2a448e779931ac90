package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/sumever1205/listing-watch/internal/entity"
	"github.com/sumever1205/listing-watch/internal/repo"
	"github.com/sumever1205/listing-watch/internal/service/source"
	"github.com/sumever1205/listing-watch/pkg/symbolx"
)

const (
	NoRecordsPlaceholder = "no records yet"
	NoNewPlaceholder     = "no new listings yet"
)

// Service renders read-only views over the record log.
type Service struct {
	repo repo.ListingRepo
}

func NewService(repo repo.ListingRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// RecentLog renders the n most recent observations, newest first,
// with raw symbols exactly as recorded.
func (s *Service) RecentLog(ctx context.Context, n int) (string, error) {
	listings, err := s.repo.FindRecent(ctx, n)
	if err != nil {
		return "", fmt.Errorf("load recent records: %w", err)
	}
	if len(listings) == 0 {
		return NoRecordsPlaceholder, nil
	}

	lines := lo.Map(listings, func(item entity.Listing, index int) string {
		return fmt.Sprintf("%s - %s: %s", item.SeenAt.Format("2006-01-02 15:04:05"), item.Source, item.Symbol)
	})
	return strings.Join(lines, "\n"), nil
}

// RecentBySource renders the newest nPerSource detections per source with
// normalized display symbols. Baseline seed records are excluded and
// sources without detections are omitted.
func (s *Service) RecentBySource(ctx context.Context, nPerSource int) (string, error) {
	var sections []string
	for _, src := range source.All {
		listings, err := s.repo.FindRecentBySource(ctx, string(src), nPerSource)
		if err != nil {
			return "", fmt.Errorf("load recent records for %s: %w", src, err)
		}
		if len(listings) == 0 {
			continue
		}

		lines := make([]string, 0, len(listings)+1)
		lines = append(lines, fmt.Sprintf("[%s] recent listings:", src))
		for _, item := range listings {
			lines = append(lines, fmt.Sprintf("- %s - %s", item.SeenAt.Format("01-02"), symbolx.Normalize(item.Symbol)))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(sections) == 0 {
		return NoNewPlaceholder, nil
	}
	return strings.Join(sections, "\n\n"), nil
}
