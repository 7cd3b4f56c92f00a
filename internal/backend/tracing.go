package backend

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NewTracerProvider creates an OTLP/HTTP tracer provider if
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns a nil provider (tracing
// disabled) when the endpoint is not configured.
func NewTracerProvider(ctx context.Context) (*sdktrace.TracerProvider, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // For local dev; make configurable
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "deskclock"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	), nil
}

// Traced wraps a Backend, recording one span per remote call.
type Traced struct {
	next   Backend
	tracer oteltrace.Tracer
}

var _ Backend = (*Traced)(nil)

// WithTracing wraps b. A nil provider yields no-op spans, so callers can
// wrap unconditionally.
func WithTracing(b Backend, provider *sdktrace.TracerProvider) *Traced {
	var tracer oteltrace.Tracer
	if provider != nil {
		tracer = provider.Tracer("deskclock/backend")
	} else {
		tracer = noop.NewTracerProvider().Tracer("deskclock/backend")
	}
	return &Traced{next: b, tracer: tracer}
}

func (t *Traced) span(ctx context.Context, name string) (context.Context, oteltrace.Span) {
	return t.tracer.Start(ctx, name)
}

func endSpan(span oteltrace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// CurrentTime implements Backend.
func (t *Traced) CurrentTime(ctx context.Context) (string, error) {
	ctx, span := t.span(ctx, "backend.CurrentTime")
	text, err := t.next.CurrentTime(ctx)
	endSpan(span, err)
	return text, err
}

// Weather implements Backend.
func (t *Traced) Weather(ctx context.Context) (WeatherInfo, error) {
	ctx, span := t.span(ctx, "backend.Weather")
	info, err := t.next.Weather(ctx)
	if err == nil {
		span.SetAttributes(attribute.String("weather.code", info.WeatherCode))
	}
	endSpan(span, err)
	return info, err
}

// DemoWeather implements Backend.
func (t *Traced) DemoWeather(ctx context.Context) (WeatherInfo, error) {
	ctx, span := t.span(ctx, "backend.DemoWeather")
	info, err := t.next.DemoWeather(ctx)
	endSpan(span, err)
	return info, err
}

// SendNotification implements Backend.
func (t *Traced) SendNotification(ctx context.Context, title, body string) error {
	ctx, span := t.span(ctx, "backend.SendNotification")
	err := t.next.SendNotification(ctx, title, body)
	endSpan(span, err)
	return err
}

// NotificationEnabled implements Backend.
func (t *Traced) NotificationEnabled(ctx context.Context) (bool, error) {
	ctx, span := t.span(ctx, "backend.NotificationEnabled")
	enabled, err := t.next.NotificationEnabled(ctx)
	endSpan(span, err)
	return enabled, err
}

// SetNotificationEnabled implements Backend.
func (t *Traced) SetNotificationEnabled(ctx context.Context, enabled bool) error {
	ctx, span := t.span(ctx, "backend.SetNotificationEnabled")
	span.SetAttributes(attribute.Bool("notification.enabled", enabled))
	err := t.next.SetNotificationEnabled(ctx, enabled)
	endSpan(span, err)
	return err
}
