package analyze

import "github.com/matzehuels/peermesh/pkg/mesh"

// Communities partitions the network into its connected components.
//
// Peers are considered in sorted key order; each not-yet-visited peer
// seeds a breadth-first traversal that collects every reachable peer,
// in visitation order, as one community. Communities are numbered by
// the order their seed is first encountered.
//
// The result is a partition: every peer belongs to exactly one
// community, and the union of all communities is the full peer set.
// An empty network yields no communities.
func Communities(n *mesh.Network) [][]string {
	visited := make(map[string]bool, n.PeerCount())
	var communities [][]string

	for _, seed := range n.Peers() {
		if visited[seed] {
			continue
		}
		communities = append(communities, collect(n, seed, visited))
	}

	return communities
}

// collect runs a BFS from seed, marking and returning every reachable
// peer in visitation order.
func collect(n *mesh.Network, seed string, visited map[string]bool) []string {
	visited[seed] = true
	queue := []string{seed}
	var community []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		community = append(community, current)

		for _, neighbor := range n.Connections(current) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			queue = append(queue, neighbor)
		}
	}

	return community
}
