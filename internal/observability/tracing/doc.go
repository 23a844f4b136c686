// Package tracing provides OpenTelemetry tracing integration.
//
// This package provides distributed tracing capabilities using OpenTelemetry.
//
// Key features:
//   - Automatic HTTP request tracing via middleware
//   - W3C Trace Context propagation from incoming requests
//   - Trace ID exposure in response headers (X-Trace-Id)
//
// Example usage:
//
//	import "tutorial-hub/internal/observability/tracing"
//
//	func main() {
//	    mux := http.NewServeMux()
//	    handler := tracing.Middleware(mux)
//	    http.ListenAndServe(":8080", handler)
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	}
package tracing
