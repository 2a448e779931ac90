package monitor

import (
	"context"

	"github.com/sumever1205/listing-watch/internal/service/source"
)

// Snapshot 当前各交易所上架的交易对
type Snapshot map[source.Source][]string

// ListingService 上币监控服务接口
type ListingService interface {
	// Bootstrap seeds the record log from the first snapshot, silently.
	Bootstrap(ctx context.Context) error
	// CheckAll runs one detect-and-notify cycle.
	CheckAll(ctx context.Context) error
}

type Notifier interface {
	Notify(ctx context.Context, text string) error
}
