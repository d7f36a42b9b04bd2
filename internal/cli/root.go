package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/svgmotion/svgmotion/pkg/color"
	"github.com/svgmotion/svgmotion/pkg/config"
	"github.com/svgmotion/svgmotion/pkg/logging"
)

var (
	jsonOutput bool
	noColor    bool
	configPath string
	logLevel   string

	// cfg is the effective configuration, loaded before every command.
	cfg = config.Default()

	rootCmd = &cobra.Command{
		Use:   "svgmotion",
		Short: "svgmotion - animation presets for svg icons",
		Long: `svgmotion embeds animation presets into svg icons, removes them again, and
reads back the exact parameters that were applied. The svg file is the only
record of the animation: no side-channel metadata is written.`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	addPersistentFlags(rootCmd)
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&configPath, "config", config.FileName, "path to config file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
}

func setup(cmd *cobra.Command, args []string) error {
	color.Init(noColor)

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	levelName := cfg.Logging.Level
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logging.SetGlobal(logging.NewLogger(level))
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmtErr("%v", err)
		os.Exit(1)
	}
}

// outputJSON prints v as indented JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
