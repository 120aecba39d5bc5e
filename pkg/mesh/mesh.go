package mesh

import (
	"errors"
	"maps"
	"slices"
	"time"
)

// ErrUnknownPeer is returned by analytic queries when a referenced peer
// has never appeared in a connection. Mutations never return it - adding
// a connection creates missing peers implicitly.
var ErrUnknownPeer = errors.New("unknown peer")

// DefaultWeight is the connection weight used when callers do not care
// about interaction frequency.
const DefaultWeight = 1

// Clock supplies creation timestamps for newly seen peers.
// Injecting it keeps peer metadata deterministic in tests.
type Clock func() time.Time

// PeerInfo holds the per-peer metadata recorded when a peer is first
// mentioned as either endpoint of a connection.
type PeerInfo struct {
	ID       string    // Unique peer identifier
	JoinedAt time.Time // First time the peer appeared in a connection
}

// Edge is one undirected connection between two peers.
// A and B are ordered so that A <= B; self-loops have A == B.
type Edge struct {
	A      string
	B      string
	Weight int
}

// pairKey identifies one direction of a symmetric weight entry.
type pairKey struct {
	from string
	to   string
}

// Network is an undirected, weighted peer graph.
//
// Adjacency sequences preserve insertion order, which drives traversal
// tie-breaks in the analyze package. The weight table stores both
// directions of every connection so that Weight(a, b) == Weight(b, a)
// always holds.
//
// Connections are not de-duplicated: adding the same pair twice appends
// a second adjacency entry on each side, while the stored weight is
// overwritten (last write wins). Self-loops are accepted.
//
// The zero value is not usable - use New. Network is not safe for
// concurrent use without external synchronization.
type Network struct {
	clock     Clock
	adjacency map[string][]string
	peers     map[string]PeerInfo
	weights   map[pairKey]int
}

// New creates an empty network. A nil clock defaults to time.Now.
func New(clock Clock) *Network {
	if clock == nil {
		clock = time.Now
	}
	return &Network{
		clock:     clock,
		adjacency: make(map[string][]string),
		peers:     make(map[string]PeerInfo),
		weights:   make(map[pairKey]int),
	}
}

// AddConnection records a connection between a and b with the given
// weight. Peers are created on first mention, stamped with the network
// clock. The call is total: it never fails, and no validation is
// applied to the peer names or weight.
//
// Repeated calls for the same pair append duplicate adjacency entries
// and overwrite the stored weight for both directions.
func (n *Network) AddConnection(a, b string, weight int) {
	n.ensurePeer(a)
	n.ensurePeer(b)

	n.adjacency[a] = append(n.adjacency[a], b)
	n.adjacency[b] = append(n.adjacency[b], a)

	n.weights[pairKey{a, b}] = weight
	n.weights[pairKey{b, a}] = weight
}

// RemoveConnection removes one occurrence of b from a's adjacency
// sequence (and vice versa) and deletes both directions' weight
// entries. Removing an absent connection is a silent no-op, never an
// error, and unknown peers are not created as a side effect.
func (n *Network) RemoveConnection(a, b string) {
	if _, ok := n.peers[a]; !ok {
		return
	}
	if _, ok := n.peers[b]; !ok {
		return
	}

	n.adjacency[a] = removeFirst(n.adjacency[a], b)
	n.adjacency[b] = removeFirst(n.adjacency[b], a)

	delete(n.weights, pairKey{a, b})
	delete(n.weights, pairKey{b, a})
}

// Has reports whether the peer has ever appeared in a connection.
// Peers with zero remaining connections still exist as isolated nodes.
func (n *Network) Has(id string) bool {
	_, ok := n.peers[id]
	return ok
}

// Peer returns the metadata recorded for the peer at first mention.
func (n *Network) Peer(id string) (PeerInfo, bool) {
	info, ok := n.peers[id]
	return info, ok
}

// Peers returns all known peer identifiers in sorted key order.
// The order is stable across calls and drives community numbering.
func (n *Network) Peers() []string {
	return slices.Sorted(maps.Keys(n.peers))
}

// Connections returns a copy of the peer's adjacency sequence in
// insertion order. Unknown peers yield an empty sequence. The call
// never mutates the network.
func (n *Network) Connections(peer string) []string {
	return slices.Clone(n.adjacency[peer])
}

// Weight returns the stored weight for the connection a-b.
// The second return is false when no such connection exists.
func (n *Network) Weight(a, b string) (int, bool) {
	w, ok := n.weights[pairKey{a, b}]
	return w, ok
}

// Degree returns the length of the peer's adjacency sequence.
// Duplicate connections count separately. Unknown peers have degree 0.
func (n *Network) Degree(peer string) int {
	return len(n.adjacency[peer])
}

// PeerCount returns the number of known peers.
func (n *Network) PeerCount() int { return len(n.peers) }

// EdgeCount returns the number of distinct connections, computed as
// half the symmetric weight table. Duplicate additions of the same
// pair count once; a self-loop stores a single weight entry and is
// therefore not reflected in this count.
func (n *Network) EdgeCount() int { return len(n.weights) / 2 }

// Edges enumerates every connection once, ordered by the sorted key
// order of the lower endpoint and then by adjacency insertion order.
// Duplicate connections between the same pair are emitted once per
// occurrence, so the result can be longer than EdgeCount.
func (n *Network) Edges() []Edge {
	var edges []Edge
	for _, a := range n.Peers() {
		loops := 0
		for _, b := range n.adjacency[a] {
			switch {
			case a < b:
				w, _ := n.Weight(a, b)
				edges = append(edges, Edge{A: a, B: b, Weight: w})
			case a == b:
				// Both directions of a self-loop land in the same
				// sequence; emit one edge per pair of entries.
				loops++
				if loops%2 == 0 {
					w, _ := n.Weight(a, b)
					edges = append(edges, Edge{A: a, B: b, Weight: w})
				}
			}
		}
	}
	return edges
}

func (n *Network) ensurePeer(id string) {
	if _, ok := n.peers[id]; ok {
		return
	}
	n.peers[id] = PeerInfo{ID: id, JoinedAt: n.clock()}
	if _, ok := n.adjacency[id]; !ok {
		n.adjacency[id] = nil
	}
}

// removeFirst deletes the first occurrence of v from s, preserving the
// order of the remaining elements.
func removeFirst(s []string, v string) []string {
	i := slices.Index(s, v)
	if i < 0 {
		return s
	}
	return slices.Delete(s, i, i+1)
}
