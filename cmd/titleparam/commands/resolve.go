package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [name=value...]",
		Short: "Validate parameter values and print the resolved titles",
		Long: "Validate name=value arguments against the parameters declared in the manifest.\n" +
			"Parameters that are not supplied fall back to their default.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			results, err := c.app.Run(cmd.Context(), configPath, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				names := make([]string, len(res.Titles))
				for i, t := range res.Titles {
					names[i] = t.FullText()
				}
				suffix := ""
				if res.Defaulted {
					suffix = " (default)"
				}
				if _, err := fmt.Fprintf(out, "%s: %s%s\n", res.Param, strings.Join(names, " | "), suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
