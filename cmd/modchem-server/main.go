package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"modchem-backend/internal/chrono"
	"modchem-backend/lib/configutil"
	"modchem-backend/lib/scrapers/wikidict"
	"modchem-backend/lib/scrapers/wikidict/db"
	"modchem-backend/lib/serviceutil"
	"modchem-backend/services/modchem"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the config file.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	err := configutil.LoadEnv()
	if err != nil {
		serviceutil.Fatal("load .env", err)
	}
	cfg, err := configutil.ReadConfig[Config](*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	closer, output := InitTelemetry(ctx, *verbose, cfg.LogFile)
	defer closer.Close()

	profile, err := cfg.Scraper.profile()
	if err != nil {
		serviceutil.Fatal("read snapshot profile", err)
	}
	timeout, err := parseDuration("scraper.timeout", cfg.Scraper.Timeout, 30*time.Second)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	cacheTTL, err := parseDuration("cache.ttl", cfg.Cache.TTL, 24*time.Hour)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	sessionTTL, err := parseDuration("session_ttl", cfg.SessionTTL, 2*time.Hour)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	clock := chrono.NewStandardTime()

	var cache *wikidict.Cache
	if cfg.Cache.Database.File != "" || cfg.Cache.Database.Url != "" {
		slog.Info("opening page cache...")
		conn, err := cfg.Cache.Database.OpenDB(db.Schema)
		if err != nil {
			serviceutil.Fatal("open page cache", err)
		}
		defer conn.Close()
		cache = wikidict.NewCache(conn, clock)
		go purgeCache(ctx, cache, time.Hour)
	}

	client := wikidict.NewClient(wikidict.Options{
		Profile:          profile,
		Cache:            cache,
		CacheTTL:         cacheTTL,
		BypassCloudflare: cfg.Scraper.BypassCloudflare,
		UserAgent:        cfg.Scraper.UserAgent,
		Timeout:          timeout,
		InstrumentOutput: output,
		Time:             clock,
	})

	sessions := modchem.NewSessionStore(clock, sessionTTL)
	go sessions.Run(ctx, time.Minute)

	handler := modchem.NewServer(
		modchem.NewService(client),
		sessions,
		modchem.ServerOptions{
			AssetsDir:    cfg.AssetsDir,
			SecureCookie: cfg.SecureCookie,
		},
	)

	port := cfg.Port
	if port == 0 {
		port = 8050
	}
	serviceutil.StartHttpServer(ctx, port, handler)
}

func purgeCache(ctx context.Context, cache *wikidict.Cache, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := cache.Purge(ctx)
			if err != nil {
				slog.WarnContext(ctx, "purge page cache", "err", err)
				continue
			}
			slog.DebugContext(ctx, "purged page cache", "count", purged)
		}
	}
}
