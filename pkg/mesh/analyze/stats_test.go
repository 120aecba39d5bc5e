package analyze

import (
	"math"
	"testing"

	"github.com/matzehuels/peermesh/pkg/mesh"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		build func() *mesh.Network
		want  NetworkStats
	}{
		{
			name:  "Empty",
			build: func() *mesh.Network { return mesh.New(nil) },
			want:  NetworkStats{},
		},
		{
			name: "SinglePeerNoDensity",
			build: func() *mesh.Network {
				n := mesh.New(nil)
				n.AddConnection("a", "b", 1)
				n.RemoveConnection("a", "b")
				n.RemoveConnection("a", "b")
				return n
			},
			// Two isolated peers: density is defined but zero.
			want: NetworkStats{Peers: 2, Edges: 0, AvgDegree: 0, Density: 0},
		},
		{
			name: "Pair",
			build: func() *mesh.Network {
				n := mesh.New(nil)
				n.AddConnection("a", "b", 1)
				return n
			},
			want: NetworkStats{Peers: 2, Edges: 1, AvgDegree: 1, Density: 100},
		},
		{
			name: "CompleteTriangle",
			build: func() *mesh.Network {
				n := mesh.New(nil)
				n.AddConnection("a", "b", 1)
				n.AddConnection("b", "c", 1)
				n.AddConnection("c", "a", 1)
				return n
			},
			want: NetworkStats{Peers: 3, Edges: 3, AvgDegree: 2, Density: 100},
		},
		{
			name: "SparseChain",
			build: func() *mesh.Network {
				n := mesh.New(nil)
				n.AddConnection("a", "b", 1)
				n.AddConnection("b", "c", 1)
				n.AddConnection("c", "d", 1)
				return n
			},
			// 3 edges of a possible 6, average degree 6/4.
			want: NetworkStats{Peers: 4, Edges: 3, AvgDegree: 1.5, Density: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Stats(tt.build())
			if got.Peers != tt.want.Peers || got.Edges != tt.want.Edges {
				t.Errorf("Stats = %+v, want %+v", got, tt.want)
			}
			if !almostEqual(got.AvgDegree, tt.want.AvgDegree) {
				t.Errorf("AvgDegree = %f, want %f", got.AvgDegree, tt.want.AvgDegree)
			}
			if !almostEqual(got.Density, tt.want.Density) {
				t.Errorf("Density = %f, want %f", got.Density, tt.want.Density)
			}
		})
	}
}

func TestStatsDensityGuard(t *testing.T) {
	n := mesh.New(nil)
	n.AddConnection("solo", "other", 1)
	n.RemoveConnection("solo", "other")

	// Drop down to a single peer by rebuilding: one peer, no pairs.
	single := mesh.New(nil)
	single.AddConnection("solo", "solo", 1)

	got := Stats(single)
	if got.Peers != 1 {
		t.Fatalf("Peers = %d, want 1", got.Peers)
	}
	if got.Density != 0 {
		t.Errorf("Density with one peer = %f, want guarded 0", got.Density)
	}
}
