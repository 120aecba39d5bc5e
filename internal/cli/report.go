package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/peermesh/pkg/mesh"
	"github.com/matzehuels/peermesh/pkg/mesh/analyze"
)

// The report functions format analysis results for the console. They
// only read the store and the result types - all traversal and ranking
// happens in pkg/mesh/analyze.

// printNetworkReport lists every peer with its adjacency sequence and
// connection weights.
func printNetworkReport(n *mesh.Network) {
	printTitle("Peer Network")
	printNewline()

	peers := n.Peers()
	if len(peers) == 0 {
		printInfo("Network is empty")
		return
	}

	for _, peer := range peers {
		var parts []string
		for _, neighbor := range n.Connections(peer) {
			w, _ := n.Weight(peer, neighbor)
			parts = append(parts, fmt.Sprintf("%s(w:%d)", neighbor, w))
		}
		line := StyleHighlight.Render(peer) + " " + StyleDim.Render(iconArrow) + " "
		if len(parts) == 0 {
			line += StyleDim.Render("(isolated)")
		} else {
			line += StyleValue.Render(strings.Join(parts, " "))
		}
		fmt.Println("  " + line)
	}
}

// printPath renders a shortest path as "A → B → C" with its hop count.
func printPath(source, target string, path []string) {
	if len(path) == 0 {
		printWarning("No path from %s to %s", source, target)
		return
	}

	styled := make([]string, len(path))
	for i, peer := range path {
		styled[i] = StyleHighlight.Render(peer)
	}
	sep := " " + StyleDim.Render(iconArrow) + " "
	fmt.Println("  " + strings.Join(styled, sep))
	printDetail("%d hops", len(path)-1)
}

// printCommunities renders the community partition, one line per
// community in detection order.
func printCommunities(communities [][]string) {
	printTitle("Learning Communities")
	printNewline()

	if len(communities) == 0 {
		printInfo("Network is empty")
		return
	}

	for i, community := range communities {
		fmt.Println("  " + StyleValue.Render(fmt.Sprintf("Community %d:", i+1)) + " " +
			StyleHighlight.Render(strings.Join(community, " ")))
		printDetail("size: %d learners", len(community))
	}
}

// printRanking renders the influence ranking as a table.
func printRanking(ranks []analyze.Rank) {
	printTitle("Influence Ranking")
	printNewline()

	if len(ranks) == 0 {
		printInfo("Network is empty")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "PEER", "CONNECTIONS", "INFLUENCE")

	for i, r := range ranks {
		t.Row(
			fmt.Sprintf("%d", i+1),
			r.Peer,
			fmt.Sprintf("%d", r.Degree),
			fmt.Sprintf("%.2f%%", r.Score),
		)
	}

	fmt.Println(t.Render())
}

// printPropagation renders the hop-by-hop visit log and reach summary.
func printPropagation(result analyze.PropagationResult, totalPeers int) {
	printTitle("Knowledge Propagation from " + result.Source)
	printNewline()

	for _, v := range result.Visits {
		fmt.Println("  " + StyleDim.Render(fmt.Sprintf("hop %d:", v.Distance)) + " " +
			StyleHighlight.Render(v.Peer))
	}
	printNewline()
	printDetail("reached %d / %d peers", result.Reached, totalPeers)
}

// printNetworkStats renders the aggregate metrics.
func printNetworkStats(stats analyze.NetworkStats) {
	printTitle("Network Statistics")
	printNewline()

	printStatLine("Peers", fmt.Sprintf("%d", stats.Peers))
	printStatLine("Connections", fmt.Sprintf("%d", stats.Edges))
	printStatLine("Avg degree", fmt.Sprintf("%.2f", stats.AvgDegree))
	printStatLine("Density", fmt.Sprintf("%.2f%%", stats.Density))
}

// printStatLine prints a labeled metric value.
func printStatLine(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println("  " + keyStyle.Render(key) + StyleValue.Render(value))
}
