package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/peermesh/pkg/mesh"
	"github.com/matzehuels/peermesh/pkg/mesh/analyze"
)

// demoConnections is the sample learning network used by the demo
// command: six learners in a single well-connected community.
var demoConnections = []struct {
	a, b   string
	weight int
}{
	{"Alice", "Bob", 3},
	{"Alice", "Charlie", 2},
	{"Bob", "Charlie", 4},
	{"Charlie", "David", 2},
	{"David", "Eve", 3},
	{"Eve", "Frank", 2},
	{"Bob", "Frank", 1},
	{"Alice", "David", 2},
}

// demoNetwork builds the sample network.
func demoNetwork() *mesh.Network {
	n := mesh.New(nil)
	for _, c := range demoConnections {
		n.AddConnection(c.a, c.b, c.weight)
	}
	return n
}

// demoCommand creates the "demo" command, which builds the sample
// network and walks through every analysis.
func (c *CLI) demoCommand() *cobra.Command {
	var hops int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run all analyses on a built-in sample network",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.Logger.Debug("building demo network", "connections", len(demoConnections))
			n := demoNetwork()

			printNetworkReport(n)
			printNewline()

			printNetworkStats(analyze.Stats(n))
			printNewline()

			printTitle("Skill Path: Alice to Frank")
			printNewline()
			path, err := analyze.ShortestPath(n, "Alice", "Frank")
			if err != nil {
				return err
			}
			printPath("Alice", "Frank", path)
			printNewline()

			printCommunities(analyze.Communities(n))
			printNewline()

			printRanking(analyze.Centrality(n))
			printNewline()

			result, err := analyze.Propagation(n, "Alice", hops)
			if err != nil {
				return err
			}
			printPropagation(result, n.PeerCount())

			return nil
		},
	}

	cmd.Flags().IntVar(&hops, "hops", 3, "hop limit for the propagation demo; negative for unbounded")
	return cmd
}
