package bybit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/sumever1205/listing-watch/internal/service/source"
)

const instrumentsURL = "https://api.bybit.com/v5/market/instruments-info?category=linear"

type Service struct {
	cli *http.Client
}

func NewService(cli *http.Client) source.Service {
	return &Service{
		cli: cli,
	}
}

func (svc *Service) Source() source.Source {
	return source.Bybit
}

type instrument struct {
	Symbol string `json:"symbol"`
}

type instrumentsResp struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		List []instrument `json:"list"`
	} `json:"result"`
}

// FetchListed returns all linear contract symbols quoted in USDT.
func (svc *Service) FetchListed(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, instrumentsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := svc.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bybit instruments status %d", resp.StatusCode)
	}

	var body instrumentsResp
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("bybit decode instruments: %w", err)
	}
	if body.RetCode != 0 {
		return nil, fmt.Errorf("bybit instruments retCode %d: %s", body.RetCode, body.RetMsg)
	}

	return lo.FilterMap(body.Result.List, func(item instrument, index int) (string, bool) {
		return item.Symbol, strings.HasSuffix(item.Symbol, "USDT")
	}), nil
}
