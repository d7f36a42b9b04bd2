package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svgmotion/svgmotion/internal/embed"
	"github.com/svgmotion/svgmotion/pkg/model"
)

var (
	embedType      string
	embedDuration  float64
	embedTiming    string
	embedIteration string
	embedDirection string
	embedDelay     float64
	embedForce     bool
	embedOut       outputTarget
)

var embedCmd = &cobra.Command{
	Use:   "embed <file|->",
	Short: "Embed an animation preset into an svg",
	Long: `Embed an animation preset into an svg, replacing any animation embedded before.

Settings not given on the command line come from the defaults section of the
config file. Settings are validated unless --force is given.

Examples:
  svgmotion embed icon.svg --type spin --duration 2 --timing linear
  svgmotion embed icon.svg --type draw --in-place
  cat icon.svg | svgmotion embed - --type pulse -o pulsing.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := model.ParseAnimationType(embedType)
		if err != nil {
			return formatUnknownTypeError(embedType, err)
		}
		s := embedSettings(cmd)
		if !embedForce {
			if err := s.Validate(); err != nil {
				return fmt.Errorf("%w (use --force to embed anyway)", err)
			}
		}

		return rewriteDocument(args[0], embedOut, func(src string) string {
			return embed.Embed(src, t, s)
		})
	},
}

// embedSettings overlays explicitly set flags on the configured defaults.
func embedSettings(cmd *cobra.Command) model.Settings {
	s := cfg.Defaults
	flags := cmd.Flags()
	if flags.Changed("duration") {
		s.Duration = embedDuration
	}
	if flags.Changed("timing") {
		s.Timing = embedTiming
	}
	if flags.Changed("iteration") {
		s.Iteration = embedIteration
	}
	if flags.Changed("direction") {
		s.Direction = model.Direction(embedDirection)
	}
	if flags.Changed("delay") {
		s.Delay = embedDelay
	}
	return s
}

func addOutputFlags(cmd *cobra.Command, target *outputTarget) {
	cmd.Flags().StringVarP(&target.path, "output", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&target.inPlace, "in-place", "i", false, "rewrite the input file")
	cmd.MarkFlagsMutuallyExclusive("output", "in-place")
}

func init() {
	embedCmd.Flags().StringVarP(&embedType, "type", "t", "", "animation type (see 'svgmotion types')")
	embedCmd.Flags().Float64Var(&embedDuration, "duration", 1, "duration in seconds")
	embedCmd.Flags().StringVar(&embedTiming, "timing", "ease", "timing function")
	embedCmd.Flags().StringVar(&embedIteration, "iteration", model.IterationInfinite, "iteration count or 'infinite'")
	embedCmd.Flags().StringVar(&embedDirection, "direction", string(model.DirectionNormal), "normal, reverse, alternate or alternate-reverse")
	embedCmd.Flags().Float64Var(&embedDelay, "delay", 0, "delay in seconds")
	embedCmd.Flags().BoolVar(&embedForce, "force", false, "embed settings without validating them")
	embedCmd.MarkFlagRequired("type")
	embedCmd.RegisterFlagCompletionFunc("type", completeTypes)
	embedCmd.RegisterFlagCompletionFunc("direction", cobra.FixedCompletions([]string{
		string(model.DirectionNormal),
		string(model.DirectionReverse),
		string(model.DirectionAlternate),
		string(model.DirectionAlternateReverse),
	}, cobra.ShellCompDirectiveNoFileComp))
	addOutputFlags(embedCmd, &embedOut)
	rootCmd.AddCommand(embedCmd)
}
