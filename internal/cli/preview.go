package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgmotion/svgmotion/internal/preview"
)

var previewName string

var previewCmd = &cobra.Command{
	Use:   "preview <file|->",
	Short: "Write a display copy of an svg to the preview cache",
	Long: `Write a display copy of an svg to the preview cache and print its path.

The copy guarantees a namespace and explicit dimensions, and monochrome black
artwork is rewritten to currentColor. Identical content is written once;
changed content always gets a new path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readDocument(args[0])
		if err != nil {
			return err
		}
		name := previewName
		if name == "" {
			name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		}

		path, err := newPreviewCache().Materialize(name, src)
		if err != nil {
			return fmt.Errorf("preview unavailable: %w", err)
		}
		if jsonOutput {
			return outputJSON(map[string]string{"name": name, "path": path})
		}
		fmt.Println(path)
		return nil
	},
}

var previewClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached preview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newPreviewCache().Clear(); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Printf("Cleared previews in %s\n", cfg.Preview.Dir)
		}
		return nil
	},
}

func newPreviewCache() *preview.Cache {
	return preview.NewDir(cfg.Preview.Dir, preview.Options{Minify: cfg.Preview.Minify})
}

func init() {
	previewCmd.Flags().StringVar(&previewName, "name", "", "cache name (defaults to the file name)")
	previewCmd.AddCommand(previewClearCmd)
	rootCmd.AddCommand(previewCmd)
}
