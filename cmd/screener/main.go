package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"CoinScout/internal/cache"
	"CoinScout/internal/config"
	"CoinScout/internal/market"
	"CoinScout/internal/notifier"
	"CoinScout/internal/scheduler"
	"CoinScout/internal/screener"
	"CoinScout/internal/sentiment"
	"CoinScout/internal/strategy"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("CoinScout starting")

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	// Market data source, optionally wrapped with the candle cache.
	var source market.Source = market.NewBinanceSource(cfg.Market.QuoteAsset)
	if cfg.Market.CachePath != "" {
		candleCache, err := cache.NewCandleCache(cfg.Market.CachePath, cfg.CacheTTL())
		if err != nil {
			log.Warn().Err(err).Msg("candle cache unavailable, fetching directly")
		} else {
			defer candleCache.Close()
			source = cache.NewCachedSource(source, candleCache)
		}
	}
	log.Info().Str("source", source.Name()).Msg("market data source ready")

	// Sentiment sources: only the configured platforms participate.
	var sources []sentiment.Source
	if cfg.Sentiment.TwitterBearerToken != "" {
		sources = append(sources, sentiment.NewTwitterSource(cfg.Sentiment.TwitterBearerToken))
	}
	if cfg.Sentiment.RedditEnabled {
		sources = append(sources, sentiment.NewRedditSource())
	}
	var agg *sentiment.Aggregator
	if len(sources) > 0 {
		agg = sentiment.NewAggregator(sources, sentiment.NewLexiconScorer(),
			cfg.SentimentWindow(), time.Duration(cfg.Sentiment.SourceTimeoutSecs)*time.Second)
	} else {
		log.Warn().Msg("no sentiment sources configured, scoring without sentiment")
	}

	params := strategy.DefaultParams()
	params.InclusionThreshold = cfg.Screen.InclusionThreshold
	scr := screener.New(source, agg, screener.Options{
		MinDailyVolume: cfg.Market.MinDailyVolume,
		CandleInterval: cfg.Market.CandleInterval,
		CandleCount:    cfg.Market.CandleCount,
		Concurrency:    cfg.Screen.Concurrency,
		SymbolTimeout:  time.Duration(cfg.Screen.SymbolTimeoutSecs) * time.Second,
		Params:         params,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Without a cron schedule, run one screening pass and print it.
	if cfg.Schedule.ScreenCron == "" {
		result, err := scr.Run(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("screening run")
		}
		fmt.Print(notifier.FormatConsoleReport(result))
		return
	}

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	sched := scheduler.NewScheduler(ctx, scr, tn, cfg.Screen.TopResults)
	if err := sched.Register(cfg.Schedule.ScreenCron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, screening now")
		go sched.RunNow()
	}

	log.Info().Msg("CoinScout is running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	cancel()
	log.Info().Msg("CoinScout stopped")
}
