package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/peermesh/pkg/errors"
	"github.com/matzehuels/peermesh/pkg/render"
)

// renderCommand creates the "render" command producing DOT, SVG, or
// PNG output of the network.
func (c *CLI) renderCommand() *cobra.Command {
	var input string
	var output string
	var format string
	var detailed bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the network as a Graphviz image",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(input)
			if err != nil {
				return err
			}

			dot := render.ToDOT(n, render.Options{Detailed: detailed})

			var data []byte
			switch strings.ToLower(format) {
			case "dot":
				data = []byte(dot)
			case "svg", "png":
				sp := newSpinnerWithContext(cmd.Context(), "Rendering "+format)
				sp.Start()
				if format == "svg" {
					data, err = render.RenderSVG(cmd.Context(), dot)
				} else {
					data, err = render.RenderPNG(cmd.Context(), dot)
				}
				sp.Stop()
				if ctxErr := cmd.Context().Err(); ctxErr != nil {
					return ctxErr
				}
				if err != nil {
					return apperrors.Wrap(apperrors.ErrCodeInternal, err, "render %s", format)
				}
			default:
				return apperrors.New(apperrors.ErrCodeInvalidFormat,
					"unknown format %q (expected dot, svg, or png)", format)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			printSuccess("Rendered %d peers", n.PeerCount())
			printFile(output)
			return nil
		},
	}

	addInputFlag(cmd, &input)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, or png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include weights and degrees in labels")
	return cmd
}
