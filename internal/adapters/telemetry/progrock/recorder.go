// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w    progrock.Writer
	rec  *progrock.Recorder
	tape *progrock.Tape
}

// New creates a new Recorder on an in-memory tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	r := &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
	if tape, ok := w.(*progrock.Tape); ok {
		r.tape = tape
	}
	return r
}

// Record starts recording a new vertex. Names identify the vertex, so
// recording the same name twice reuses its digest.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Steps reads the recorded vertices back from the tape in start order.
// Recorders writing to anything other than a tape return nil.
func (r *Recorder) Steps() []domain.Step {
	if r.tape == nil {
		return nil
	}

	vertices := r.tape.Vertices()
	steps := make([]domain.Step, 0, len(vertices))
	for _, v := range vertices {
		steps = append(steps, stepOf(v))
	}
	return steps
}

func stepOf(v *progrock.Vertex) domain.Step {
	step := domain.Step{Name: v.Name, Status: domain.StepRunning}
	switch {
	case v.Error != nil:
		step.Status = domain.StepFailed
		step.Err = *v.Error
	case v.Cached:
		step.Status = domain.StepCached
	case v.Completed != nil:
		step.Status = domain.StepDone
	}
	return step
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
