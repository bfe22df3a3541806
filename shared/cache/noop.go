package cache

import "context"

// noopCache satisfies Cache without storing anything. Get always misses.
type noopCache struct{}

func NewNoop() Cache {
	return &noopCache{}
}

func (*noopCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

func (*noopCache) Get(_ context.Context, _ string, _ any) error {
	return Nil
}

func (*noopCache) Delete(_ context.Context, _ string) error {
	return nil
}

func (*noopCache) Clear(_ context.Context, _ string) error {
	return nil
}
