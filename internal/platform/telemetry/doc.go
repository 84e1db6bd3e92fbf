// Package telemetry wires the service's observability stack: Prometheus
// request metrics with a scrape handler, and the OpenTelemetry tracer
// provider used by the HTTP layer and the Postgres store.
package telemetry
