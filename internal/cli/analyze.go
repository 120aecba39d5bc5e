package cli

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/peermesh/pkg/errors"
	"github.com/matzehuels/peermesh/pkg/manifest"
	"github.com/matzehuels/peermesh/pkg/mesh"
	"github.com/matzehuels/peermesh/pkg/mesh/analyze"
	"github.com/matzehuels/peermesh/pkg/meshio"
)

// loadNetwork builds a network from a manifest or export file, chosen
// by file extension (.toml manifests, .json exports).
func (c *CLI) loadNetwork(path string) (*mesh.Network, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return manifest.Load(path, nil)
	case ".json":
		return meshio.ReadFile(path, nil)
	default:
		return nil, apperrors.New(apperrors.ErrCodeUnsupported,
			"unsupported network file %q (expected .toml or .json)", path)
	}
}

// addInputFlag registers the shared --input flag on an analysis command.
func addInputFlag(cmd *cobra.Command, input *string) {
	cmd.Flags().StringVarP(input, "input", "i", "", "network file (.toml manifest or .json export)")
	_ = cmd.MarkFlagRequired("input")
}

// showCommand creates the "show" command printing the adjacency report.
func (c *CLI) showCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the network's peers, connections, and weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}
			printNetworkReport(n)
			return nil
		},
	}

	addInputFlag(cmd, &input)
	return cmd
}

// statsCommand creates the "stats" command.
func (c *CLI) statsCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate network statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}
			c.Logger.Debug("computing stats", "peers", n.PeerCount())
			printNetworkStats(analyze.Stats(n))
			return nil
		},
	}

	addInputFlag(cmd, &input)
	return cmd
}

// pathCommand creates the "path" command.
func (c *CLI) pathCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "path <source> <target>",
		Short: "Find the shortest learning path between two peers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}

			source, target := args[0], args[1]
			path, err := analyze.ShortestPath(n, source, target)
			if errors.Is(err, mesh.ErrUnknownPeer) {
				return apperrors.Wrap(apperrors.ErrCodePeerNotFound, err, "find path")
			}
			if err != nil {
				return err
			}

			printPath(source, target, path)
			return nil
		},
	}

	addInputFlag(cmd, &input)
	return cmd
}

// communitiesCommand creates the "communities" command.
func (c *CLI) communitiesCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "communities",
		Short: "Detect connected learning communities",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}
			printCommunities(analyze.Communities(n))
			return nil
		},
	}

	addInputFlag(cmd, &input)
	return cmd
}

// rankCommand creates the "rank" command.
func (c *CLI) rankCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank peers by degree centrality",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}
			printRanking(analyze.Centrality(n))
			return nil
		},
	}

	addInputFlag(cmd, &input)
	return cmd
}

// propagateCommand creates the "propagate" command.
func (c *CLI) propagateCommand() *cobra.Command {
	var input string
	var hops int

	cmd := &cobra.Command{
		Use:   "propagate <source>",
		Short: "Simulate knowledge propagation from a source peer",
		Long:  `Simulate breadth-first knowledge propagation from a source peer. A peer counts as reached only when its hop distance is strictly below --hops; with a negative limit the propagation is unbounded.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}

			result, err := analyze.Propagation(n, args[0], hops)
			if errors.Is(err, mesh.ErrUnknownPeer) {
				return apperrors.Wrap(apperrors.ErrCodePeerNotFound, err, "simulate propagation")
			}
			if err != nil {
				return err
			}

			printPropagation(result, n.PeerCount())
			return nil
		},
	}

	addInputFlag(cmd, &input)
	cmd.Flags().IntVar(&hops, "hops", analyze.NoHopLimit, "hop limit; negative for unbounded")
	return cmd
}
