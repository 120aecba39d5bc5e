package analyze

import (
	"slices"
	"testing"
)

func TestCommunities(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]string
		want  [][]string
	}{
		{
			name:  "Empty",
			pairs: nil,
			want:  nil,
		},
		{
			name:  "SingleComponent",
			pairs: [][2]string{{"a", "b"}, {"b", "c"}},
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "TwoComponents",
			pairs: [][2]string{{"a", "b"}, {"x", "y"}},
			want:  [][]string{{"a", "b"}, {"x", "y"}},
		},
		{
			name: "SeededInSortedOrder",
			// z-w is declared first, but the component seeded by "a"
			// comes first because peers iterate in sorted key order.
			pairs: [][2]string{{"z", "w"}, {"a", "b"}},
			want:  [][]string{{"a", "b"}, {"w", "z"}},
		},
		{
			name: "BFSVisitationOrderWithinCommunity",
			// From seed "a": direct neighbors in insertion order, then
			// the second ring.
			pairs: [][2]string{{"a", "c"}, {"a", "b"}, {"c", "d"}},
			want:  [][]string{{"a", "c", "b", "d"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := build(tt.pairs...)
			got := Communities(n)
			if len(got) != len(tt.want) {
				t.Fatalf("Communities = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("community %d = %v, want %v", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCommunitiesPartition(t *testing.T) {
	n := build(
		[2]string{"a", "b"}, [2]string{"b", "c"},
		[2]string{"x", "y"},
		[2]string{"lone", "lone"},
	)
	// An isolated peer forms its own community too.
	n.AddConnection("solo", "gone", 1)
	n.RemoveConnection("solo", "gone")

	communities := Communities(n)

	seen := make(map[string]int)
	for _, community := range communities {
		if len(community) == 0 {
			t.Fatal("empty community in partition")
		}
		for _, peer := range community {
			seen[peer]++
		}
	}

	for _, peer := range n.Peers() {
		if seen[peer] != 1 {
			t.Errorf("peer %s appears %d times across communities, want exactly 1", peer, seen[peer])
		}
	}
	if len(seen) != n.PeerCount() {
		t.Errorf("union covers %d peers, want %d", len(seen), n.PeerCount())
	}
}
