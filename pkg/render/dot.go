// Package render converts peer networks to Graphviz DOT and renders
// them to image formats.
//
// The DOT conversion is pure string building and needs no external
// tooling; [RenderSVG] and [RenderPNG] run Graphviz in-process via
// the goccy/go-graphviz WASM runtime.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/peermesh/pkg/mesh"
)

// Options configures DOT conversion.
type Options struct {
	// Detailed includes connection weights as edge labels and peer
	// degrees in node labels. When false, only identifiers are shown.
	Detailed bool
}

// ToDOT converts a network to Graphviz DOT format as an undirected
// graph. Peers appear in sorted order and connections in the network's
// deterministic edge order, so the output is stable for a given
// network. The resulting string can be rendered with [RenderSVG] or
// [RenderPNG].
func ToDOT(n *mesh.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph peermesh {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, peer := range n.Peers() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, peer, opts.Detailed))}
		fmt.Fprintf(&buf, "  %q [%s];\n", peer, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range n.Edges() {
		if opts.Detailed {
			fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n", e.A, e.B, fmt.Sprintf("%d", e.Weight))
		} else {
			fmt.Fprintf(&buf, "  %q -- %q;\n", e.A, e.B)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *mesh.Network, peer string, detailed bool) string {
	if !detailed {
		return peer
	}
	return fmt.Sprintf("%s\ndeg: %d", peer, n.Degree(peer))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
