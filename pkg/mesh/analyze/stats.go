package analyze

import "github.com/matzehuels/peermesh/pkg/mesh"

// NetworkStats aggregates structural metrics for a whole network.
type NetworkStats struct {
	Peers     int     // Total peer count
	Edges     int     // Distinct connections (symmetric weight table / 2)
	AvgDegree float64 // Mean adjacency-sequence length over all peers
	Density   float64 // Edges relative to the maximum possible, in percent
}

// Stats computes aggregate metrics from the current network state.
//
// Density is the ratio of actual edges to the n*(n-1)/2 maximum for n
// peers, expressed as a percentage. It is reported as 0 when the
// network has fewer than two peers, where the ratio is undefined.
func Stats(n *mesh.Network) NetworkStats {
	stats := NetworkStats{
		Peers: n.PeerCount(),
		Edges: n.EdgeCount(),
	}
	if stats.Peers == 0 {
		return stats
	}

	total := 0
	for _, peer := range n.Peers() {
		total += n.Degree(peer)
	}
	stats.AvgDegree = float64(total) / float64(stats.Peers)

	if stats.Peers >= 2 {
		maxEdges := stats.Peers * (stats.Peers - 1) / 2
		stats.Density = 100 * float64(stats.Edges) / float64(maxEdges)
	}

	return stats
}
