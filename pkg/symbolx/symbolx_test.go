package symbolx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "binance perpetual",
			raw:  "BTCUSDT",
			want: "BTC",
		},
		{
			name: "okx swap",
			raw:  "BTC-USDT",
			want: "BTC",
		},
		{
			name: "okx swap with suffix",
			raw:  "SOL-SWAP",
			want: "SOL",
		},
		{
			name: "upbit krw market",
			raw:  "KRW-BTC",
			want: "BTC",
		},
		{
			name: "unrecognized passes through",
			raw:  "BTCBUSD",
			want: "BTCBUSD",
		},
		{
			name: "bare usdt not stripped to empty",
			raw:  "USDT",
			want: "USDT",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.raw))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"BTCUSDT", "BTC-USDT", "KRW-BTC", "SOL-SWAP", "USDT", "DOGE"} {
		once := Normalize(raw)
		assert.Equal(t, once, Normalize(once), "raw=%s", raw)
	}
}

func TestNormalizeCrossSource(t *testing.T) {
	// the same asset listed under different source conventions
	// must render identically
	assert.Equal(t, Normalize("BTC"), Normalize("KRW-BTC"))
	assert.Equal(t, Normalize("BTCUSDT"), Normalize("BTC-USDT"))
	assert.Equal(t, "BTC", Normalize("BTCUSDT"))
}

func TestNormalizeSingleRule(t *testing.T) {
	// at most one rule applies per call
	assert.Equal(t, "ETHUSDT", Normalize("KRW-ETHUSDT"))
	assert.Equal(t, "X-USDT", Normalize("X-USDTUSDT"))
}
