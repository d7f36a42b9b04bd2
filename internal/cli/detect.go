package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svgmotion/svgmotion/internal/detect"
	"github.com/svgmotion/svgmotion/pkg/color"
	"github.com/svgmotion/svgmotion/pkg/model"
)

var detectCmd = &cobra.Command{
	Use:   "detect <file|->",
	Short: "Show the animation embedded in an svg",
	Long: `Show the animation embedded in an svg.

Prints "none" when the document carries no animation. With --json the
result is an object with type and settings, or null.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readDocument(args[0])
		if err != nil {
			return err
		}
		d := detect.Detect(src)

		if jsonOutput {
			return outputJSON(d)
		}
		if d == nil {
			fmt.Println(model.AnimationNone)
			return nil
		}
		s := d.Settings
		fmt.Printf("%s %s\n", color.Header("Animation:"), color.Type(string(d.Type)))
		fmt.Printf("  Duration:  %ss\n", model.FormatSeconds(s.Duration))
		fmt.Printf("  Timing:    %s\n", s.Timing)
		fmt.Printf("  Delay:     %ss\n", model.FormatSeconds(s.Delay))
		fmt.Printf("  Iteration: %s\n", s.Iteration)
		fmt.Printf("  Direction: %s\n", s.Direction)
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List animation types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type entry struct {
			Type   model.AnimationType `json:"type"`
			Family string              `json:"family"`
		}
		var list []entry
		for _, t := range model.Types() {
			list = append(list, entry{Type: t, Family: t.Family()})
		}
		if jsonOutput {
			return outputJSON(list)
		}
		for _, e := range list {
			fmt.Printf("%-14s %s\n", e.Type, color.Dim(e.Family))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(typesCmd)
}
