// Package diagnostic provides the reporting side of the binding engine:
// severities, structured diagnostics and the sinks they are delivered to.
//
// The engine never logs through global state. Every binding carries a Sink
// and reports resolution failures, write failures and absent readings to it.
//
// Key capabilities:
//   - Sink interface with SinkFunc and Discard adapters
//   - Collector, a concurrency-safe Sink that keeps every report
//   - NewZerolog, a Sink backed by a zerolog.Logger
//   - Diagnostics, severity-bucketed records used by declaration-file validation
package diagnostic
