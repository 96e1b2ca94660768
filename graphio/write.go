package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hopdist/core"
)

// ErrNoVertices is returned by Write for a graph the format cannot express.
var ErrNoVertices = errors.New("graphio: graph has no vertices")

// Write emits g and start in the format understood by Read.
// start must be a valid vertex of g; the format has no way to express a
// graph without vertices.
func Write(w io.Writer, g *core.Graph, start int) error {
	n := g.VertexCount()
	if n == 0 {
		return ErrNoVertices
	}
	if start < 0 || start >= n {
		return fmt.Errorf("graphio: start %d not in [0,%d): %w", start, n, core.ErrOutOfRange)
	}
	edges := g.Edges()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", n, len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d\n", e.From, e.To)
	}
	fmt.Fprintf(bw, "%d\n", start)

	return bw.Flush()
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g *core.Graph, start int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	return Write(f, g, start)
}
