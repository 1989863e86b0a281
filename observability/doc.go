// Package observability wires OpenTelemetry tracing and metrics for
// dispatched service errors.
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability)
//	defer shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("svcerrors"))
//	metrics.RecordServiceError(ctx, resp)
//	observability.RecordDispatch(ctx, resp)
package observability
