// Package server exposes bigcalc's multiply-comparison orchestrator and
// Prometheus metrics over HTTP, with CORS and basic security headers.
package server
