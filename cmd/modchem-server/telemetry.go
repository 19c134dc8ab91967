package main

import (
	"context"
	"io"
	"log/slog"

	"modchem-backend/lib/restyutil"
	"modchem-backend/lib/serviceutil"
	"modchem-backend/lib/telemetry"
)

// InitTelemetry sets up logging, otel and the perf gauges. When verbose, it
// also returns an output that dumps every scraper request to .dev/resty.
func InitTelemetry(ctx context.Context, verbose bool, logFile string) (io.Closer, restyutil.InstrumentOutput) {
	closer, err := telemetry.InitSlog(verbose, logFile)
	if err != nil {
		serviceutil.Fatal("init logging", err)
	}

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	tel, err := telemetry.SetupFromEnv(ctx, "modchem-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		tel.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return closer, nil
	}
	output, err := restyutil.NewFilesystemOutput(".dev/resty/wikidict")
	if err != nil {
		slog.WarnContext(ctx, "request dumps disabled", "err", err)
		return closer, nil
	}
	return closer, output
}
