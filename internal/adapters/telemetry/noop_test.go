package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/internal/adapters/telemetry"
	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
)

func TestNoOpRecorder(t *testing.T) {
	recorder := telemetry.NewNoOpRecorder()

	ctx, vertex := recorder.Record(context.Background(), "png:my-icon")
	require.NotNil(t, vertex)

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)

	vertex.Log(domain.LogLevelDebug, "ignored")
	vertex.Cached()
	vertex.Complete(nil)

	assert.Nil(t, recorder.Steps())
	assert.NoError(t, recorder.Close())
}
