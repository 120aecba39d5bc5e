package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	apperrors "github.com/matzehuels/peermesh/pkg/errors"
)

const validManifest = `
name = "study-group"

[[connections]]
peers = ["Alice", "Bob"]
weight = 3

[[connections]]
peers = ["Bob", "Charlie"]
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if m.Name != "study-group" {
		t.Errorf("Name = %q, want study-group", m.Name)
	}
	if len(m.Connections) != 2 {
		t.Fatalf("connections = %d, want 2", len(m.Connections))
	}
	if m.Connections[0].Weight != 3 {
		t.Errorf("weight = %d, want 3", m.Connections[0].Weight)
	}
	if m.Connections[1].Weight != 0 {
		t.Errorf("weight = %d, want 0 (defaulted at build time)", m.Connections[1].Weight)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode apperrors.Code
	}{
		{
			name:     "MalformedTOML",
			input:    `name = `,
			wantCode: apperrors.ErrCodeInvalidManifest,
		},
		{
			name: "WrongArity",
			input: `
[[connections]]
peers = ["Alice", "Bob", "Charlie"]
`,
			wantCode: apperrors.ErrCodeInvalidManifest,
		},
		{
			name: "EmptyPeer",
			input: `
[[connections]]
peers = ["Alice", ""]
`,
			wantCode: apperrors.ErrCodeInvalidManifest,
		},
		{
			name: "NegativeWeight",
			input: `
[[connections]]
peers = ["Alice", "Bob"]
weight = -2
`,
			wantCode: apperrors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !apperrors.Is(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	n := m.Build(nil)
	if !slices.Equal(n.Peers(), []string{"Alice", "Bob", "Charlie"}) {
		t.Errorf("Peers = %v, want [Alice Bob Charlie]", n.Peers())
	}
	if w, _ := n.Weight("Alice", "Bob"); w != 3 {
		t.Errorf("Weight(Alice, Bob) = %d, want 3", w)
	}
	// Missing weight defaults to 1.
	if w, _ := n.Weight("Bob", "Charlie"); w != 1 {
		t.Errorf("Weight(Bob, Charlie) = %d, want default 1", w)
	}
}

func TestBuildSelfLoop(t *testing.T) {
	m, err := Parse([]byte(`
[[connections]]
peers = ["Alice", "Alice"]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	n := m.Build(nil)
	if n.Degree("Alice") != 2 {
		t.Errorf("Degree(Alice) = %d, want 2 for a self-loop", n.Degree("Alice"))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "network.toml")
	if err := os.WriteFile(path, []byte(validManifest), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n.PeerCount() != 3 {
		t.Errorf("PeerCount = %d, want 3", n.PeerCount())
	}
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}
