package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kastheco/codecolor/internal/mcptools"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "serve the color tools over MCP on stdio",
		Long: `Run an MCP server on stdin/stdout exposing color_convert, color_contrast,
color_suggest, color_harmonies and color_ramp. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcptools.NewServer(version, mcptools.New(opts.defaults()))
			return mcptools.ServeStdio(s)
		},
	}
}
