// Package meshio provides the canonical JSON serialization for peer
// networks, used for exports, tooling interchange, and round-trip
// processing.
//
// A [Document] is the on-disk form: an envelope with a generated ID
// and export timestamp around the peer and connection lists. Peers are
// sorted and connections are enumerated deterministically, so encoding
// the same network twice (with a fixed clock and ID) produces
// identical output.
package meshio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/matzehuels/peermesh/pkg/errors"
	"github.com/matzehuels/peermesh/pkg/mesh"
)

// Document is the serialization envelope for a peer network.
type Document struct {
	ID          string       `json:"id"`
	ExportedAt  time.Time    `json:"exported_at"`
	Peers       []Peer       `json:"peers"`
	Connections []Connection `json:"connections"`
}

// Peer is the serialized form of one network peer.
type Peer struct {
	ID       string    `json:"id"`
	JoinedAt time.Time `json:"joined_at,omitzero"`
}

// Connection is the serialized form of one undirected connection.
type Connection struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// FromNetwork converts a network to its serialization form.
//
// Peers are sorted by ID and each undirected connection appears once,
// so output is deterministic. Duplicate connections between the same
// pair are preserved as separate entries; re-importing the document
// therefore rebuilds the same adjacency multiplicities. The envelope
// gets a fresh UUID and the current export time.
func FromNetwork(n *mesh.Network) Document {
	peers := n.Peers()
	doc := Document{
		ID:         uuid.NewString(),
		ExportedAt: time.Now().UTC(),
		Peers:      make([]Peer, len(peers)),
	}

	for i, id := range peers {
		info, _ := n.Peer(id)
		doc.Peers[i] = Peer{ID: id, JoinedAt: info.JoinedAt}
	}

	for _, e := range n.Edges() {
		doc.Connections = append(doc.Connections, Connection{
			From:   e.A,
			To:     e.B,
			Weight: e.Weight,
		})
	}

	return doc
}

// ToNetwork rebuilds a network from its serialization form.
//
// Connections are replayed through [mesh.Network.AddConnection], so
// peer creation timestamps come from the supplied clock, not from the
// document's joined_at values (those are informational). Peers listed
// without any connection are not recreated, matching the store's
// connection-driven lifecycle.
//
// Returns an INVALID_INPUT error when a connection references an empty
// peer ID.
func ToNetwork(doc Document, clock mesh.Clock) (*mesh.Network, error) {
	n := mesh.New(clock)
	for _, c := range doc.Connections {
		if c.From == "" || c.To == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput,
				"connection with empty peer id: %q-%q", c.From, c.To)
		}
		n.AddConnection(c.From, c.To, c.Weight)
	}
	return n, nil
}

// Marshal converts a network to indented JSON bytes.
func Marshal(n *mesh.Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(n, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a network as JSON to an io.Writer.
func Write(n *mesh.Network, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromNetwork(n)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a network to a JSON file at path.
// The file is created with 0644 permissions.
func WriteFile(n *mesh.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(n, f)
}

// Read decodes a JSON network document from an io.Reader and rebuilds
// the network with the given clock (nil defaults to time.Now).
func Read(r io.Reader, clock mesh.Clock) (*mesh.Network, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode network document")
	}
	return ToNetwork(doc, clock)
}

// ReadFile reads a JSON network document from a file.
// Returns a FILE_NOT_FOUND error when the file does not exist.
func ReadFile(path string, clock mesh.Clock) (*mesh.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, clock)
}
