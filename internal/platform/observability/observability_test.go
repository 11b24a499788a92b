package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextDefaultsToNoop(t *testing.T) {
	t.Parallel()

	require.NotNil(t, FromContext(context.Background()))
	l := zap.NewExample()
	require.Same(t, l, FromContext(WithLogger(context.Background(), l)))
}

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()

	_, atom, err := NewLogger("debug")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, atom.Level())

	_, atom, err = NewLogger("nonsense")
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, atom.Level())
}

func TestRequestLoggerRecordsStatusAndRoute(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(InjectLogger(zap.New(core)), RequestLogger)
	r.Get("/projects/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nope"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projects/42", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.Equal(t, "/projects/{id}", fields["route"])
	require.EqualValues(t, http.StatusNotFound, fields["status"])
	require.EqualValues(t, 4, fields["bytes"])
}

func TestRecoveryAnswersJSONForHTMX(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	h := Recovery(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodPost, "/editor/content", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.ObserveExport("ok", 2048)
	m.ObserveExport("error", 0)
	m.ObserveProjectWrite("save")
	m.ObserveProjectWrite("save")
	m.SetEditorSessions(3)

	require.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("error")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.projectWrites.WithLabelValues("save")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.editorSessions))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "criadorlp_export_bytes_count 1")
	require.Contains(t, rec.Body.String(), `criadorlp_project_writes_total{op="save"} 2`)
}

func TestTraceStartsServerSpanWithRouteAndStatus(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	r := chi.NewRouter()
	r.Use(Trace(tp), InjectLogger(zap.NewNop()), RequestLogger)
	r.Get("/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.True(t, trace.SpanContextFromContext(r.Context()).IsValid())
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodGet, "/projects/42", nil)
	req.Header.Set("traceparent", parent)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Header().Get("traceparent"), "4bf92f3577b34da6a3ce929d0e0e4736")

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	failed := spans[0]
	require.Equal(t, "GET /projects/{id}", failed.Name())
	require.Equal(t, trace.SpanKindServer, failed.SpanKind())
	require.Equal(t, codes.Error, failed.Status().Code)
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", failed.Parent().TraceID().String())
	require.Contains(t, failed.Attributes(), attribute.Int("http.response.status_code", http.StatusInternalServerError))
	require.Contains(t, failed.Attributes(), attribute.String("http.route", "/projects/{id}"))

	ok := spans[1]
	require.Equal(t, "GET /healthz", ok.Name())
	require.Equal(t, codes.Ok, ok.Status().Code)
	require.False(t, ok.Parent().IsValid())
}

func TestRequestLoggerAddsTraceID(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(Trace(tp), InjectLogger(zap.New(core)), RequestLogger)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	require.Len(t, entries[0].ContextMap()["trace_id"], 32)
}
