package otel

import "context"

// noopOtel is used when no OTLP endpoint is configured.
type noopOtel struct{}

func (*noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, Scope) {
	return ctx, &noopScope{}
}

type noopScope struct{}

func (*noopScope) End()                          {}
func (*noopScope) TraceError(_ error)            {}
func (*noopScope) TraceIfError(_ error)          {}
func (*noopScope) AddEvent(_ string)             {}
func (*noopScope) SetAttribute(_ string, _ any)  {}
func (*noopScope) SetAttributes(_ map[string]any) {}
