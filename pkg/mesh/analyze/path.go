package analyze

import (
	"fmt"
	"slices"

	"github.com/matzehuels/peermesh/pkg/mesh"
)

// ShortestPath returns the shortest sequence of peers from source to
// target, inclusive of both endpoints, using unweighted breadth-first
// search. Connection weights are ignored for this query.
//
// Neighbors are explored in adjacency insertion order, so among
// equal-length candidates the path discovered first under that order
// wins. The tie-break is deterministic but not globally canonical.
//
// Returns [mesh.ErrUnknownPeer] if either endpoint is unknown, and a
// nil path with a nil error if target is unreachable from source.
// When source == target the path is the single-element sequence.
func ShortestPath(n *mesh.Network, source, target string) ([]string, error) {
	if !n.Has(source) {
		return nil, fmt.Errorf("%w: %s", mesh.ErrUnknownPeer, source)
	}
	if !n.Has(target) {
		return nil, fmt.Errorf("%w: %s", mesh.ErrUnknownPeer, target)
	}
	if source == target {
		return []string{source}, nil
	}

	parent := map[string]string{source: ""}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			return reconstruct(parent, target), nil
		}

		for _, neighbor := range n.Connections(current) {
			if _, seen := parent[neighbor]; seen {
				continue
			}
			parent[neighbor] = current
			queue = append(queue, neighbor)
		}
	}

	return nil, nil
}

// reconstruct walks the parent chain from target back to the BFS root.
func reconstruct(parent map[string]string, target string) []string {
	var path []string
	for node := target; node != ""; node = parent[node] {
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}
