package source

import "context"

// Source 监控的交易所
type Source string

const (
	Binance Source = "Binance"
	Bybit   Source = "Bybit"
	OKX     Source = "OKX"
	Upbit   Source = "Upbit"
)

// All fixes the adapter order within a scan cycle.
var All = []Source{Binance, Bybit, OKX, Upbit}

// Service fetches the currently listed raw symbols for one exchange.
// Symbols are returned exactly as the exchange names them, no normalization.
type Service interface {
	Source() Source
	FetchListed(ctx context.Context) ([]string, error)
}
