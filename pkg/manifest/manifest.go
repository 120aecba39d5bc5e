// Package manifest loads peer networks from declarative TOML files.
//
// A network manifest names the network and lists its connections; the
// peers come into existence through the connections that mention them,
// the same way [mesh.Network.AddConnection] creates them:
//
//	name = "study-group"
//
//	[[connections]]
//	peers = ["Alice", "Bob"]
//	weight = 3
//
//	[[connections]]
//	peers = ["Bob", "Charlie"]
//
// A missing weight defaults to [mesh.DefaultWeight]. Connection order
// in the file is preserved, which fixes the adjacency insertion order
// and therefore the traversal tie-breaks of the analyze package.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/peermesh/pkg/errors"
	"github.com/matzehuels/peermesh/pkg/mesh"
)

// Manifest is the decoded form of a network manifest file.
type Manifest struct {
	Name        string       `toml:"name"`
	Connections []Connection `toml:"connections"`
}

// Connection is one declared connection between two peers.
type Connection struct {
	Peers  []string `toml:"peers"`
	Weight int      `toml:"weight"`
}

// Parse decodes manifest data.
// Returns an INVALID_MANIFEST error for malformed TOML or declarations
// that fail validation.
func Parse(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parse manifest")
	}
	if err := m.validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// ParseFile reads and decodes a manifest file.
// Returns a FILE_NOT_FOUND error when the file does not exist.
func ParseFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return Manifest{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Build constructs a network from the manifest's connection list.
// Connections are applied in file order with the given clock
// (nil defaults to time.Now).
func (m Manifest) Build(clock mesh.Clock) *mesh.Network {
	n := mesh.New(clock)
	for _, c := range m.Connections {
		weight := c.Weight
		if weight == 0 {
			weight = mesh.DefaultWeight
		}
		n.AddConnection(c.Peers[0], c.Peers[1], weight)
	}
	return n
}

// Load is the convenience path from a manifest file straight to a
// built network.
func Load(path string, clock mesh.Clock) (*mesh.Network, error) {
	m, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return m.Build(clock), nil
}

// validate checks every declared connection. Each needs exactly two
// peer names (the same name twice declares a self-loop), valid peer
// identifiers, and a positive weight when one is given.
func (m Manifest) validate() error {
	for i, c := range m.Connections {
		if len(c.Peers) != 2 {
			return apperrors.New(apperrors.ErrCodeInvalidManifest,
				"connection %d: need exactly 2 peers, got %d", i+1, len(c.Peers))
		}
		for _, id := range c.Peers {
			if err := apperrors.ValidatePeerID(id); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err,
					"connection %d", i+1)
			}
		}
		if c.Weight != 0 {
			if err := apperrors.ValidateWeight(c.Weight); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err,
					"connection %d (%s-%s)", i+1, c.Peers[0], c.Peers[1])
			}
		}
	}
	return nil
}
