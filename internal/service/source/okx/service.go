package okx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/samber/lo"
	"github.com/sumever1205/listing-watch/internal/service/source"
)

const instrumentsURL = "https://www.okx.com/api/v5/public/instruments?instType=SWAP"

type Service struct {
	cli *http.Client
}

func NewService(cli *http.Client) source.Service {
	return &Service{
		cli: cli,
	}
}

func (svc *Service) Source() source.Source {
	return source.OKX
}

type instrument struct {
	InstId    string `json:"instId"`
	SettleCcy string `json:"settleCcy"`
}

type instrumentsResp struct {
	Code string       `json:"code"`
	Msg  string       `json:"msg"`
	Data []instrument `json:"data"`
}

// FetchListed returns all USDT-settled swap instruments, reported
// without the trailing -SWAP segment of the instrument id.
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
		return nil, fmt.Errorf("okx instruments status %d", resp.StatusCode)
	}

	var body instrumentsResp
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("okx decode instruments: %w", err)
	}
	if body.Code != "0" {
		return nil, fmt.Errorf("okx instruments code %s: %s", body.Code, body.Msg)
	}

	return lo.FilterMap(body.Data, func(item instrument, index int) (string, bool) {
		return strings.TrimSuffix(item.InstId, "-SWAP"), item.SettleCcy == "USDT"
	}), nil
}
