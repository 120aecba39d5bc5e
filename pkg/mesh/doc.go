// Package mesh provides the in-memory peer network that all PeerMesh
// analytics are computed from.
//
// # Overview
//
// PeerMesh models a network of learners as an undirected, weighted
// graph: peers are nodes, and a connection between two peers carries an
// integer weight describing interaction frequency. The [Network] type
// owns all graph state - peers, adjacency sequences, edge weights, and
// per-peer metadata. Everything else in the repository reads or mutates
// a Network.
//
// # Basic Usage
//
// Create a network with [New] and build it with [Network.AddConnection].
// Peers are created implicitly the first time they appear as either
// endpoint; there is no separate "add peer" operation:
//
//	n := mesh.New(nil)
//	n.AddConnection("Alice", "Bob", 3)
//	n.AddConnection("Bob", "Charlie", 1)
//
// Query structure with [Network.Peers], [Network.Connections],
// [Network.Weight], and [Network.Degree]. The analyze subpackage builds
// shortest paths, communities, rankings, and propagation simulations on
// top of these accessors.
//
// # Ordering Guarantees
//
// Two orderings are part of the contract, because traversal results
// depend on them:
//
//   - [Network.Peers] returns identifiers in sorted key order. This
//     makes community numbering and report output reproducible.
//   - [Network.Connections] returns neighbors in insertion order, which
//     decides ties between equal-length shortest paths.
//
// # Duplicate Connections and Self-Loops
//
// AddConnection applies no validation. Calling it twice for the same
// pair appends a second adjacency entry on each side (the network is a
// multigraph in that sense) while the stored weight is simply
// overwritten - last write wins. A peer may also be connected to
// itself. Callers that need simple graphs must enforce that themselves.
//
// # Concurrency
//
// Network instances are not safe for concurrent use. All operations are
// synchronous and run on the calling goroutine; callers that share a
// network across goroutines must serialize mutations and give queries a
// consistent snapshot, for example with a single mutex around the store.
//
// # Related Packages
//
// The [analyze] subpackage provides the read-only analytics: shortest
// paths, connected communities, degree centrality, propagation
// simulation, and aggregate statistics.
//
// [analyze]: github.com/matzehuels/peermesh/pkg/mesh/analyze
package mesh
