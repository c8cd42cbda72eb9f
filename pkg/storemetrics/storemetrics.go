package storemetrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BookingPortal/pkg/metrics"
)

type contextKey struct{}

var operationKey = contextKey{}

// WithOperation помечает контекст запроса именем операции для метрик
// Имя операции попадает в label outbound_requests_total{operation=...}
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationKey, operation)
}

// OperationFromContext извлекает имя операции из контекста
func OperationFromContext(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return "unknown"
}

// Transport http.RoundTripper, собирающий метрики исходящих запросов
// Аналог обертки БД с метриками, но для внешнего HTTP-хранилища
type Transport struct {
	base    http.RoundTripper
	metrics *metrics.Metrics
	target  string
}

// NewTransport создает транспорт с метриками поверх базового RoundTripper
// Если base == nil, используется http.DefaultTransport
func NewTransport(base http.RoundTripper, m *metrics.Metrics, target string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:    base,
		metrics: m,
		target:  target,
	}
}

// RoundTrip выполняет запрос и записывает метрики
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	operation := OperationFromContext(req.Context())
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	duration := time.Since(start).Seconds()
	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	if t.metrics != nil {
		t.metrics.OutboundRequestsTotal.WithLabelValues(t.target, operation, status).Inc()
		t.metrics.OutboundRequestDuration.WithLabelValues(t.target, operation).Observe(duration)
	}

	return resp, err
}
