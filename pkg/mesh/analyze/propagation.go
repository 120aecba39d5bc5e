package analyze

import (
	"fmt"

	"github.com/matzehuels/peermesh/pkg/mesh"
)

// NoHopLimit disables the hop limit in [Propagation]; any negative
// value has the same effect.
const NoHopLimit = -1

// Visit records one peer reached during a propagation simulation.
type Visit struct {
	Peer     string // Peer identifier
	Distance int    // Shortest hop distance from the source (source = 0)
}

// PropagationResult describes how far knowledge spreads from a source.
type PropagationResult struct {
	Source  string  // Origin peer of the simulation
	Reached int     // Peers reached; counts the source when it is within the limit
	Visits  []Visit // Reached peers in breadth-first discovery order
}

// Propagation simulates breadth-first knowledge spread from source,
// assigning each discovered peer its shortest hop distance.
//
// A peer counts as reached, and has its neighbors expanded, only when
// its distance is strictly less than hopLimit. Peers discovered at
// exactly hopLimit are excluded from the reached count, the visit log,
// and further expansion - the effective reachable set is
// {distance < hopLimit}, not {distance <= hopLimit}. With hopLimit 0
// not even the source is reached.
//
// With a negative hopLimit the simulation is unbounded and the reached
// count equals the size of the connected component containing source.
// Returns [mesh.ErrUnknownPeer] if source is unknown.
func Propagation(n *mesh.Network, source string, hopLimit int) (PropagationResult, error) {
	if !n.Has(source) {
		return PropagationResult{}, fmt.Errorf("%w: %s", mesh.ErrUnknownPeer, source)
	}

	result := PropagationResult{Source: source}
	distance := map[string]int{source: 0}
	queue := []string{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		dist := distance[current]

		if hopLimit >= 0 && dist >= hopLimit {
			continue
		}

		result.Reached++
		result.Visits = append(result.Visits, Visit{Peer: current, Distance: dist})

		for _, neighbor := range n.Connections(current) {
			if _, seen := distance[neighbor]; seen {
				continue
			}
			distance[neighbor] = dist + 1
			queue = append(queue, neighbor)
		}
	}

	return result, nil
}
