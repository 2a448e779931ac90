package bybit

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type rtFunc func(*http.Request) *http.Response

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func fakeClient(body string, code int) *http.Client {
	return &http.Client{
		Transport: rtFunc(func(r *http.Request) *http.Response {
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
				Request:    r,
			}
		}),
	}
}

func TestService_FetchListed(t *testing.T) {
	body := `{"retCode":0,"retMsg":"OK","result":{"category":"linear","list":[
		{"symbol":"BTCUSDT","contractType":"LinearPerpetual"},
		{"symbol":"ETHPERP"},
		{"symbol":"XRPUSDT"}
	]}}`
	svc := NewService(fakeClient(body, http.StatusOK))

	symbols, err := svc.FetchListed(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"BTCUSDT", "XRPUSDT"}, symbols)
}

func TestService_FetchListedBadStatus(t *testing.T) {
	svc := NewService(fakeClient("", http.StatusServiceUnavailable))
	_, err := svc.FetchListed(context.Background())
	assert.Error(t, err)
}

func TestService_FetchListedApiError(t *testing.T) {
	svc := NewService(fakeClient(`{"retCode":10001,"retMsg":"params error"}`, http.StatusOK))
	_, err := svc.FetchListed(context.Background())
	assert.ErrorContains(t, err, "params error")
}

func TestService_FetchListedMalformedBody(t *testing.T) {
	svc := NewService(fakeClient(`{"retCode":0,"result":`, http.StatusOK))
	_, err := svc.FetchListed(context.Background())
	assert.Error(t, err)
}
