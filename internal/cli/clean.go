package cli

import (
	"github.com/spf13/cobra"

	"github.com/svgmotion/svgmotion/internal/clean"
	"github.com/svgmotion/svgmotion/internal/normalize"
)

var (
	cleanOut     outputTarget
	normalizeOut outputTarget
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file|->",
	Short: "Remove every embedded animation artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rewriteDocument(args[0], cleanOut, clean.StripOwnedArtifacts)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file|->",
	Short: "Ensure the svg root declares exactly one SVG namespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return rewriteDocument(args[0], normalizeOut, normalize.EnsureNamespace)
	},
}

func init() {
	addOutputFlags(cleanCmd, &cleanOut)
	addOutputFlags(normalizeCmd, &normalizeOut)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(normalizeCmd)
}
