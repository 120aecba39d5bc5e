package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/peermesh/pkg/buildinfo"
)

// RootCommand builds the peermesh command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "PeerMesh analyzes peer-to-peer learning networks",
		Long:         `PeerMesh models a network of learners as an undirected, weighted graph and answers questions about it: shortest learning paths, community structure, influence ranking, knowledge propagation, and aggregate statistics.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.demoCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.communitiesCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.propagateCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}
