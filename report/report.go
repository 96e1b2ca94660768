// Package report renders BFS distance results for humans and machines.
//
// The text format matches the classic console output: a header line and one
// "Node i: d" line per vertex except the start vertex. Unreachable vertices
// print the raw -1 sentinel. JSON and YAML keep every vertex, the start
// included, so the full distance array survives a round trip.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects an output renderer.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for an unknown Format.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// ParseFormat resolves a case-insensitive format name; "yml" is an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Entry is the distance of one vertex.
type Entry struct {
	Node     int `json:"node" yaml:"node"`
	Distance int `json:"distance" yaml:"distance"`
}

// Report is the renderable view of one BFS run.
type Report struct {
	Start     int     `json:"start" yaml:"start"`
	Distances []Entry `json:"distances" yaml:"distances"`
	// PathTo and Path are set together when a route was requested.
	PathTo *int  `json:"path_to,omitempty" yaml:"path_to,omitempty"`
	Path   []int `json:"path,omitempty" yaml:"path,omitempty"`
}

// New builds a Report from a distance array.
func New(start int, dist []int) Report {
	entries := make([]Entry, len(dist))
	for v, d := range dist {
		entries[v] = Entry{Node: v, Distance: d}
	}

	return Report{Start: start, Distances: entries}
}

// WithPath attaches a shortest route to target.
func (r Report) WithPath(target int, path []int) Report {
	r.PathTo = &target
	r.Path = path
	return r
}

// Render writes rep to w in the requested format.
func Render(w io.Writer, format Format, rep Report) error {
	switch format {
	case FormatText:
		return renderText(w, rep)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(format))
	}
}

func renderText(w io.Writer, rep Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Distances from node %d:\n", rep.Start)
	for _, e := range rep.Distances {
		if e.Node == rep.Start {
			continue
		}
		fmt.Fprintf(&b, "Node %d: %d\n", e.Node, e.Distance)
	}
	if rep.PathTo != nil {
		parts := make([]string, len(rep.Path))
		for i, v := range rep.Path {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(&b, "Path to node %d: %s\n", *rep.PathTo, strings.Join(parts, " -> "))
	}
	_, err := io.WriteString(w, b.String())

	return err
}
