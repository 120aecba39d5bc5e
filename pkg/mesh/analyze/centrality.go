package analyze

import (
	"cmp"
	"slices"

	"github.com/matzehuels/peermesh/pkg/mesh"
)

// Rank is one entry of the influence ranking produced by [Centrality].
type Rank struct {
	Peer   string  // Peer identifier
	Degree int     // Adjacency length; duplicate connections count separately
	Score  float64 // Influence score in percent, see Centrality
}

// Centrality ranks every peer by degree, descending, with ascending
// peer ID as the deterministic secondary key on equal degrees.
//
// The influence score is 100 * degree / peerCount. Note that this
// normalizes by the number of peers rather than the maximum possible
// degree (peerCount - 1); a peer connected to all others therefore
// approaches but never reaches 100%.
//
// An empty network yields an empty ranking.
func Centrality(n *mesh.Network) []Rank {
	peers := n.Peers()
	if len(peers) == 0 {
		return nil
	}

	ranks := make([]Rank, len(peers))
	total := float64(len(peers))
	for i, peer := range peers {
		degree := n.Degree(peer)
		ranks[i] = Rank{
			Peer:   peer,
			Degree: degree,
			Score:  100 * float64(degree) / total,
		}
	}

	slices.SortFunc(ranks, func(a, b Rank) int {
		if c := cmp.Compare(b.Degree, a.Degree); c != 0 {
			return c
		}
		return cmp.Compare(a.Peer, b.Peer)
	})

	return ranks
}
