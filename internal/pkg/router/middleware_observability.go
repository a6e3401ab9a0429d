package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/mailbite/internal/pkg/instrument"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// statusWriter captures the response status and the handler error so the
// middleware can log and trace the outcome after the handler returns.
type statusWriter struct {
	http.ResponseWriter
	status int
	err    error
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// SetError records the handler error for the access log.
func (w *statusWriter) SetError(err error) {
	w.err = err
}

func middlewareObservability(ins instrument.Instrumentation) Middleware {
	tracer := ins.Tracer("pkg.router")
	meter := ins.Meter("pkg.router")

	requestCount, _ := meter.Int64Counter("http.server.request.count")
	requestLatency, _ := meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("ms"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := r.URL.Path
			if matched := httprouter.ParamsFromContext(r.Context()).MatchedRoutePath(); matched != "" {
				route = matched
			}

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPath(r.URL.Path),
					semconv.UserAgentOriginal(r.UserAgent()),
				),
			)
			defer span.End()

			sw := &statusWriter{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(sw, r.WithContext(ctx))

			elapsed := time.Since(start)
			if sw.status == 0 {
				sw.status = http.StatusOK
			}

			attrs := []attribute.KeyValue{
				semconv.HTTPRequestMethodKey.String(r.Method),
				semconv.HTTPRouteKey.String(route),
				semconv.HTTPResponseStatusCode(sw.status),
			}
			requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
			requestLatency.Record(ctx, float64(elapsed.Milliseconds()), metric.WithAttributes(attrs...))

			span.SetAttributes(semconv.HTTPResponseStatusCode(sw.status))
			if sw.err != nil {
				span.RecordError(sw.err)
				span.SetStatus(codes.Error, sw.err.Error())
			}

			logArgs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", elapsed.Milliseconds(),
				"remote_ip", r.RemoteAddr,
			}
			if sw.err != nil {
				logArgs = append(logArgs, "error", sw.err.Error())
			}

			if sw.status >= http.StatusInternalServerError {
				slog.ErrorContext(ctx, "http request completed", logArgs...)
				return
			}
			slog.InfoContext(ctx, "http request completed", logArgs...)
		})
	}
}
