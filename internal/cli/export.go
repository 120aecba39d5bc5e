package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/peermesh/pkg/meshio"
)

// exportCommand creates the "export" command writing a JSON document.
func (c *CLI) exportCommand() *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the network as a JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			if output == "" {
				if err := meshio.Write(n, cmd.OutOrStdout()); err != nil {
					return err
				}
				return nil
			}
			if err := meshio.WriteFile(n, output); err != nil {
				return err
			}
			p.done("Exported network")
			printFile(output)
			return nil
		},
	}

	addInputFlag(cmd, &input)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
