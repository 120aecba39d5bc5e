// Package analyze implements the read-only analytics over a peer
// network: shortest learning paths, community discovery, degree-based
// influence ranking, propagation simulation, and aggregate statistics.
//
// Every function derives its result from the current state of a
// [mesh.Network] on each call; the package holds no state of its own
// and never mutates the network it is given.
//
// Queries that reference a specific peer return [mesh.ErrUnknownPeer]
// when that peer has never appeared in a connection. An empty result
// with a nil error always means "the peer exists, but nothing was
// found" - for example a target that is unreachable from the source.
package analyze
