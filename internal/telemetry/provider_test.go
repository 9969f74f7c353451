package telemetry

import (
	"context"
	"testing"
)

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	t.Setenv("DOCANALYSIS_OTEL_ENDPOINT", "")
	t.Setenv("DOCANALYSIS_OTEL_ENABLED", "")

	shutdown, err := Setup(context.Background(), "docanalysis-test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupDisabled(t *testing.T) {
	t.Setenv("DOCANALYSIS_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("DOCANALYSIS_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "docanalysis-test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestTracerStartsSpans(t *testing.T) {
	_, span := Tracer().Start(context.Background(), "check")
	defer span.End()
	if span == nil {
		t.Fatal("expected a span")
	}
}
