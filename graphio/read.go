package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/katalvlaran/hopdist/core"
)

// MaxVertices bounds the vertex count Read accepts. Larger headers are
// rejected with ErrInvalidInput before any allocation.
const MaxVertices = 1 << 24

// Sentinel errors for graph input. Every one of them matches ErrIO.
var (
	// ErrIO is the umbrella for all graph input failures.
	ErrIO = errors.New("graphio: input failure")

	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = fmt.Errorf("graphio: file not found: %w", ErrIO)

	// ErrInvalidInput indicates missing or invalid vertex / edge counts.
	ErrInvalidInput = fmt.Errorf("graphio: invalid input: %w", ErrIO)

	// ErrEdgeRead indicates a truncated or malformed edge pair.
	ErrEdgeRead = fmt.Errorf("graphio: edge read error: %w", ErrIO)

	// ErrInvalidStart indicates a missing, malformed or out-of-range start vertex.
	ErrInvalidStart = fmt.Errorf("graphio: invalid start node: %w", ErrIO)
)

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

// next returns the next integer token. io.ErrUnexpectedEOF marks a missing token.
func (t *tokenReader) next() (int, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.Atoi(t.sc.Text())
}

// Read parses a graph description from r and returns the populated graph and
// the start vertex. The graph is created empty, resized to N and then filled
// with AddEdge in file order, so neighbor lists follow the file.
// Complexity: O(N + M).
func Read(r io.Reader) (*core.Graph, int, error) {
	tr := newTokenReader(r)

	n, err := tr.next()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: vertex count: %w", ErrInvalidInput, err)
	}
	m, err := tr.next()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: edge count: %w", ErrInvalidInput, err)
	}
	if n <= 0 || m < 0 {
		return nil, 0, fmt.Errorf("%w: vertices=%d edges=%d", ErrInvalidInput, n, m)
	}
	if n > MaxVertices {
		return nil, 0, fmt.Errorf("%w: vertices=%d exceeds %d", ErrInvalidInput, n, MaxVertices)
	}

	g, err := core.NewGraph(0)
	if err != nil {
		return nil, 0, err
	}
	if err = g.Resize(n); err != nil {
		return nil, 0, err
	}
	for i := 0; i < m; i++ {
		u, err := tr.next()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: edge %d of %d: %w", ErrEdgeRead, i+1, m, err)
		}
		v, err := tr.next()
		if err != nil {
			return nil, 0, fmt.Errorf("%w: edge %d of %d: %w", ErrEdgeRead, i+1, m, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, 0, fmt.Errorf("%w: edge %d of %d: %w", ErrIO, i+1, m, err)
		}
	}

	start, err := tr.next()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidStart, start, n)
	}

	return g, start, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, 0, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	g, start, err := Read(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return g, start, nil
}
