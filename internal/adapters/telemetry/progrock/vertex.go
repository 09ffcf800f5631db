package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/libpack/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the task's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the task's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes a step message to the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
