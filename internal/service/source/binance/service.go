package binance

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/samber/lo"
	"github.com/sumever1205/listing-watch/internal/service/source"
)

type Service struct {
	cli     *futures.Client
	timeout time.Duration
}

func NewService(cli *futures.Client, timeout time.Duration) source.Service {
	return &Service{
		cli:     cli,
		timeout: timeout,
	}
}

func (svc *Service) Source() source.Source {
	return source.Binance
}

// FetchListed returns all USDT-margined perpetual contract symbols.
func (svc *Service) FetchListed(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	info, err := svc.cli.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, err
	}
	return filterPerpetual(info.Symbols), nil
}

func filterPerpetual(symbols []futures.Symbol) []string {
	return lo.FilterMap(symbols, func(item futures.Symbol, index int) (string, bool) {
		return item.Symbol, item.ContractType == "PERPETUAL" && item.QuoteAsset == "USDT"
	})
}
