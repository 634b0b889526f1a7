// Package telemetry provides implementations of the ports.Telemetry interface.
package telemetry

import (
	"context"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
)

var (
	_ ports.Telemetry = (*NoOpRecorder)(nil)
	_ ports.Vertex    = (*NoOpVertex)(nil)
)

// NoOpRecorder is a no-op implementation of ports.Telemetry.
type NoOpRecorder struct{}

// NewNoOpRecorder creates a new NoOpRecorder.
func NewNoOpRecorder() *NoOpRecorder {
	return &NoOpRecorder{}
}

// Record returns a no-op vertex.
func (r *NoOpRecorder) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Steps returns nil; nothing is recorded.
func (r *NoOpRecorder) Steps() []domain.Step {
	return nil
}

// Close does nothing.
func (r *NoOpRecorder) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
