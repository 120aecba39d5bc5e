// Package pkg provides the core libraries for PeerMesh learning network analysis.
//
// # Overview
//
// PeerMesh models a peer-to-peer learning network as an undirected,
// weighted graph and answers structural questions about it: who can
// reach whom, which study communities exist, who the influential peers
// are, and how far knowledge spreads. The pkg directory is organized
// into five areas:
//
//  1. [mesh] - The network store (peers, connections, weights)
//  2. [mesh/analyze] - Analytics over a network (paths, communities, centrality, propagation, stats)
//  3. [manifest] / [meshio] - Input and output formats (TOML manifests, JSON exports)
//  4. [render] - Graphviz DOT conversion and SVG/PNG rendering
//  5. [errors] - Structured error codes for the application layers
//
// # Architecture
//
// The typical data flow through PeerMesh:
//
//	TOML manifest / JSON export
//	         ↓
//	    [manifest] / [meshio] (build the network)
//	         ↓
//	    [mesh] package (store peers, adjacency, weights)
//	         ↓
//	    [mesh/analyze] package (run analytics)
//	         ↓
//	    console report / DOT / SVG / PNG / JSON
//
// # Quick Start
//
// Build a network and run an analysis:
//
//	import (
//	    "github.com/matzehuels/peermesh/pkg/mesh"
//	    "github.com/matzehuels/peermesh/pkg/mesh/analyze"
//	)
//
//	n := mesh.New(nil)
//	n.AddConnection("Alice", "Bob", 3)
//	n.AddConnection("Bob", "Charlie", 2)
//
//	path, _ := analyze.ShortestPath(n, "Alice", "Charlie")
//	stats := analyze.Stats(n)
//
// # Main Packages
//
// [mesh] - The core graph store. Peers are created implicitly when
// first mentioned in a connection, adjacency lists preserve insertion
// order, and all enumeration (peers, edges) is deterministic.
//
// [mesh/analyze] - Read-only analytics: BFS shortest paths, connected
// community detection, degree centrality ranking, hop-limited
// knowledge propagation, and aggregate network statistics.
//
// [manifest] - TOML manifest parsing and validation for declaring
// networks in files.
//
// [meshio] - JSON export/import of complete networks, round-trip safe.
//
// [render] - Conversion to Graphviz DOT plus in-process SVG/PNG
// rendering via the goccy/go-graphviz WASM runtime.
//
// [errors] - Error codes and validation shared by the boundary layers
// (manifest, meshio, CLI).
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/mesh/analyze/... # Specific package
//	go test -run Example           # Examples only
//
// [mesh]: https://pkg.go.dev/github.com/matzehuels/peermesh/pkg/mesh
// [mesh/analyze]: https://pkg.go.dev/github.com/matzehuels/peermesh/pkg/mesh/analyze
// [manifest]: https://pkg.go.dev/github.com/matzehuels/peermesh/pkg/manifest
// [meshio]: https://pkg.go.dev/github.com/matzehuels/peermesh/pkg/meshio
// [render]: https://pkg.go.dev/github.com/matzehuels/peermesh/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/peermesh/pkg/errors
package pkg
