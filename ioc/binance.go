package ioc

import (
	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/spf13/viper"
)

func InitBinanceCli() *futures.Client {
	type Config struct {
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.binance", &cfg); err != nil {
		panic(err)
	}

	// the instrument listing endpoint is public, keys may stay empty
	return binance.NewFuturesClient(cfg.ApiKey, cfg.ApiSecret)
}
