package upbit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/sumever1205/listing-watch/internal/service/source"
)

const marketAllURL = "https://api.upbit.com/v1/market/all"

type Service struct {
	cli *http.Client
}

func NewService(cli *http.Client) source.Service {
	return &Service{
		cli: cli,
	}
}

func (svc *Service) Source() source.Source {
	return source.Upbit
}

type market struct {
	Market string `json:"market"`
}

// FetchListed returns all KRW spot market codes.
func (svc *Service) FetchListed(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, marketAllURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := svc.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upbit market all status %d", resp.StatusCode)
	}

	var markets []market
	if err = json.NewDecoder(resp.Body).Decode(&markets); err != nil {
		return nil, fmt.Errorf("upbit decode markets: %w", err)
	}

	return lo.FilterMap(markets, func(item market, index int) (string, bool) {
		return item.Market, strings.HasPrefix(item.Market, "KRW-")
	}), nil
}
