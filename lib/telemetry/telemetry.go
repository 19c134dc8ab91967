package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

// Telemetry holds the providers installed by Setup. Either provider may be
// nil when its exporter was not configured.
type Telemetry struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

func (t Telemetry) Shutdown(ctx context.Context) error {
	errlist := []error{}
	if t.TracerProvider != nil {
		err := t.TracerProvider.Shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
	}
	if t.MeterProvider != nil {
		err := t.MeterProvider.Shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
	}
	return errors.Join(errlist...)
}

type OtlpConnConfig struct {
	// endpoints are full urls, e.g. "http://localhost:4317"
	GrpcEndpoint string            `json:"grpc_endpoint"`
	HttpEndpoint string            `json:"http_endpoint"`
	Headers      map[string]string `json:"headers"`
}

func (c OtlpConnConfig) configured() bool {
	return c.GrpcEndpoint != "" || c.HttpEndpoint != ""
}

type TracesConfig struct {
	OtlpConnConfig
	// SampleRatio below 1 keeps only that share of root traces.
	SampleRatio float64 `json:"sample_ratio"`
}

type MetricsConfig struct {
	OtlpConnConfig
	// Interval is a duration string, 15s when empty.
	Interval string `json:"interval"`
}

type OtlpConfig struct {
	Traces  TracesConfig  `json:"traces"`
	Metrics MetricsConfig `json:"metrics"`
}

// ResourceConfig adds deployment details to every exported signal.
type ResourceConfig struct {
	Environment string            `json:"environment"`
	Version     string            `json:"version"`
	Attributes  map[string]string `json:"attributes"`
}

type Config struct {
	Resource ResourceConfig `json:"resource"`
	Otlp     OtlpConfig     `json:"otlp"`
}

// Setup installs global tracer and meter providers exporting over otlp.
// Signals without an endpoint keep the default no-op provider.
func Setup(ctx context.Context, serviceName string, config Config) (Telemetry, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	r, err := newResource(serviceName, config.Resource)
	if err != nil {
		return Telemetry{}, err
	}

	var tel Telemetry
	if config.Otlp.Traces.configured() {
		tel.TracerProvider, err = newTraceProvider(ctx, r, config.Otlp.Traces)
		if err != nil {
			return Telemetry{}, err
		}
		otel.SetTracerProvider(tel.TracerProvider)
	} else {
		slog.Debug("no trace exporter configured", "service", serviceName)
	}

	if config.Otlp.Metrics.configured() {
		tel.MeterProvider, err = newMetricProvider(ctx, r, config.Otlp.Metrics)
		if err != nil {
			return tel, errors.Join(err, tel.Shutdown(context.Background()))
		}
		otel.SetMeterProvider(tel.MeterProvider)
	} else {
		slog.Debug("no metric exporter configured", "service", serviceName)
	}

	return tel, nil
}
