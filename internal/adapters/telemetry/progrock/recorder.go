// Package progrock records build task progress on a progrock tape.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/libpack/internal/core/ports"
)

// Recorder implements ports.Telemetry, one vertex per recorded task.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named after the task and returns a context carrying it,
// so process output started under that context is captured on the vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
