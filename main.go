package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/sumever1205/listing-watch/internal/repo"
	"github.com/sumever1205/listing-watch/internal/schedule"
	"github.com/sumever1205/listing-watch/internal/service/history"
	"github.com/sumever1205/listing-watch/internal/service/monitor"
	"github.com/sumever1205/listing-watch/internal/service/notification/telegram"
	"github.com/sumever1205/listing-watch/internal/service/source"
	"github.com/sumever1205/listing-watch/internal/service/source/binance"
	"github.com/sumever1205/listing-watch/internal/service/source/bybit"
	"github.com/sumever1205/listing-watch/internal/service/source/okx"
	"github.com/sumever1205/listing-watch/internal/service/source/upbit"
	"github.com/sumever1205/listing-watch/ioc"
)

func initViper() {

	// --config=./config/config.yaml
	file := pflag.String("config", "./config/config.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}

}

type monitorConfig struct {
	IntervalMinutes     int `mapstructure:"interval_minutes"`
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds"`
	CycleTimeoutSeconds int `mapstructure:"cycle_timeout_seconds"`
}

func initMonitorConfig() monitorConfig {
	cfg := monitorConfig{
		IntervalMinutes:     3,
		FetchTimeoutSeconds: 10,
		CycleTimeoutSeconds: 60,
	}
	if err := viper.UnmarshalKey("monitor", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func main() {
	initViper()
	cfg := initMonitorConfig()
	fetchTimeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	listingRepo := repo.NewListingRepo(db)

	bian := ioc.InitBinanceCli()
	httpCli := &http.Client{Timeout: fetchTimeout}
	sources := []source.Service{
		binance.NewService(bian, fetchTimeout),
		bybit.NewService(httpCli),
		okx.NewService(httpCli),
		upbit.NewService(httpCli),
	}

	bot, chatId := ioc.InitTelegramBot()
	notifier := telegram.NewNotifier(bot, chatId)

	listingMonitor := monitor.NewListingMonitor(listingRepo, sources, monitor.WithNotifier(notifier))
	historySvc := history.NewService(listingRepo)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := listingMonitor.Bootstrap(ctx); err != nil {
		panic(err)
	}

	interval := time.Duration(cfg.IntervalMinutes) * time.Minute
	cycleTimeout := time.Duration(cfg.CycleTimeoutSeconds) * time.Second
	runner := schedule.NewIntervalRunner(interval, cycleTimeout)
	go runner.Run(ctx, monitor.NewListingMonitorTask(listingMonitor))

	if err := notifier.Notify(ctx, "listing watcher started"); err != nil {
		slog.Error("failed to send startup message", "error", err)
	}

	cmdBot := telegram.NewBot(bot, historySvc, listingMonitor)
	if err := cmdBot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}
}
