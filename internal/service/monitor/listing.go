package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/sumever1205/listing-watch/internal/entity"
	"github.com/sumever1205/listing-watch/internal/repo"
	"github.com/sumever1205/listing-watch/internal/service/source"
	"github.com/sumever1205/listing-watch/pkg/symbolx"
)

// record timestamps use a fixed UTC+8 wall clock, whole seconds
var recordZone = time.FixedZone("UTC+8", 8*60*60)

// ErrScanInFlight reports a trigger that arrived while a cycle was
// already running. The trigger is dropped, not queued.
var ErrScanInFlight = errors.New("listing scan already in flight")

type ListingMonitor struct {
	sources  []source.Service
	repo     repo.ListingRepo
	notifier Notifier
	now      func() time.Time

	// serializes cycles, a trigger arriving mid-cycle is skipped
	cycleMu sync.Mutex
}

type consoleNotifier struct {
}

func (c consoleNotifier) Notify(ctx context.Context, text string) error {
	fmt.Println(text)
	return nil
}

type Option func(m *ListingMonitor)

func WithNotifier(notifier Notifier) Option {
	return func(m *ListingMonitor) {
		m.notifier = notifier
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *ListingMonitor) {
		m.now = now
	}
}

func NewListingMonitor(repo repo.ListingRepo, sources []source.Service, opts ...Option) *ListingMonitor {
	monitor := &ListingMonitor{
		sources:  sources,
		repo:     repo,
		notifier: consoleNotifier{},
		now: func() time.Time {
			return time.Now().In(recordZone).Truncate(time.Second)
		},
	}
	for _, opt := range opts {
		opt(monitor)
	}
	return monitor
}

// Bootstrap seeds an empty record log with everything currently listed,
// without notifying. A non-empty log means the baseline already exists.
func (m *ListingMonitor) Bootstrap(ctx context.Context) error {
	count, err := m.repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("load record log: %w", err)
	}
	if count > 0 {
		slog.Info("record log already initialized, skipping bootstrap", "records", count)
		return nil
	}

	snapshot := m.fetchSnapshot(ctx)
	now := m.now()
	seen := make(map[repo.Pair]struct{})
	var listings []entity.Listing
	for _, svc := range m.sources {
		for _, symbol := range snapshot[svc.Source()] {
			pair := repo.Pair{Source: string(svc.Source()), Symbol: symbol}
			if _, ok := seen[pair]; ok {
				continue
			}
			seen[pair] = struct{}{}
			listings = append(listings, entity.Listing{
				Source: pair.Source,
				Symbol: pair.Symbol,
				Seed:   true,
				SeenAt: now,
			})
		}
	}

	if err = m.repo.CreateBatch(ctx, listings); err != nil {
		return fmt.Errorf("seed record log: %w", err)
	}
	slog.Info("record log initialized", "records", len(listings))
	return nil
}

// CheckAll fetches a snapshot from every source, records every pair not
// seen before and delivers one batched notification for the cycle.
func (m *ListingMonitor) CheckAll(ctx context.Context) error {
	if !m.cycleMu.TryLock() {
		slog.Warn("listing scan already in flight, skipping trigger")
		return ErrScanInFlight
	}
	defer m.cycleMu.Unlock()

	snapshot := m.fetchSnapshot(ctx)

	pairs, err := m.repo.FindPairs(ctx)
	if err != nil {
		return fmt.Errorf("load known pairs: %w", err)
	}
	known := lo.SliceToMap(pairs, func(item repo.Pair) (repo.Pair, struct{}) {
		return item, struct{}{}
	})

	var lines []string
	for _, svc := range m.sources {
		src := svc.Source()
		for _, symbol := range snapshot[src] {
			pair := repo.Pair{Source: string(src), Symbol: symbol}
			if _, ok := known[pair]; ok {
				continue
			}

			// record before notifying, so a lost message can never
			// cause the same pair to be re-notified next cycle
			err = m.repo.Create(ctx, entity.Listing{
				Source: pair.Source,
				Symbol: pair.Symbol,
				SeenAt: m.now(),
			})
			if err != nil {
				slog.Error("failed to record new listing", "source", src, "symbol", symbol, "error", err)
				continue
			}
			known[pair] = struct{}{}

			slog.Info("new listing detected", "source", src, "symbol", symbol)
			lines = append(lines, fmt.Sprintf("[%s] new listing: %s", src, symbolx.Normalize(symbol)))
		}
	}

	if len(lines) == 0 {
		return nil
	}
	if err = m.notifier.Notify(ctx, strings.Join(lines, "\n")); err != nil {
		slog.Error("failed to deliver listing notification", "error", err)
	}
	return nil
}

// fetchSnapshot queries all sources concurrently. A failing source yields
// an empty set and never aborts the cycle.
func (m *ListingMonitor) fetchSnapshot(ctx context.Context) Snapshot {
	results := make([][]string, len(m.sources))
	var wg sync.WaitGroup
	for i, svc := range m.sources {
		wg.Add(1)
		go func(i int, svc source.Service) {
			defer wg.Done()
			symbols, err := svc.FetchListed(ctx)
			if err != nil {
				slog.Error("failed to fetch listed symbols", "source", svc.Source(), "error", err)
				return
			}
			results[i] = symbols
		}(i, svc)
	}
	wg.Wait()

	snapshot := make(Snapshot, len(m.sources))
	for i, svc := range m.sources {
		snapshot[svc.Source()] = results[i]
	}
	return snapshot
}
