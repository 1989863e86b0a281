package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/svcerrors/errors"
	"github.com/kbukum/svcerrors/logger"
)

// InitMeter installs an OTLP/HTTP meter provider as the global provider.
// The caller shuts it down on exit.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.MetricInterval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.MetricInterval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.MetricInterval.String(),
	))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricErrorTotal  = "error.total"
	MetricRecordTotal = "error.records"
)

// Metrics holds the instruments for dispatched errors.
type Metrics struct {
	errorTotal  metric.Int64Counter
	recordTotal metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	errorTotal, err := meter.Int64Counter(MetricErrorTotal,
		metric.WithDescription("Dispatched service errors by code, kind and type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrorTotal, err)
	}

	recordTotal, err := meter.Int64Counter(MetricRecordTotal,
		metric.WithDescription("Error records written to clients"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRecordTotal, err)
	}

	return &Metrics{errorTotal: errorTotal, recordTotal: recordTotal}, nil
}

// RecordServiceError counts one dispatched error and its records. A nil
// receiver is a no-op.
func (m *Metrics) RecordServiceError(ctx context.Context, resp errors.Response) {
	if m == nil {
		return
	}
	kind := errors.KindUnknown
	if resp.Err != nil {
		kind = resp.Err.Kind()
	}
	typ := ""
	if len(resp.Body.Errors) > 0 {
		typ = resp.Body.Errors[0].Type
	}
	attrs := metric.WithAttributes(
		attribute.Int("code", resp.Status),
		attribute.String("kind", kind.String()),
		attribute.String("type", typ),
	)
	m.errorTotal.Add(ctx, 1, attrs)
	m.recordTotal.Add(ctx, int64(len(resp.Body.Errors)), attrs)
}
