package ports

import (
	"context"

	"go.trai.ch/iconsync/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work performed during a run.
type Telemetry interface {
	// Record starts a new vertex with the given name.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Steps returns the recorded vertices in the order they were started.
	Steps() []domain.Step

	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Log records a message associated with this vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)

	// Cached marks the vertex as satisfied by an existing output.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
