package cli

import (
	"github.com/spf13/cobra"

	"github.com/subnudge/subnudge/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subnudge [subtitle_file]",
	Short: "Shift subtitle timestamps to match what you see on screen",
	Long: `Subnudge applies a uniform time offset to every entry of an SRT
subtitle file.

With --start-at it shows the first few lines of the file, asks which one
should start at the given time, and shifts the whole file so it does. The
original file is preserved next to the input with an _orig suffix.

Times use the relaxed [[HH:]MM:]SS[,mmm] form.

Examples:
  subnudge movie.srt -s 1:23,450
  subnudge movie.srt -s 0:01:23,450 -n 15
  subnudge movie.srt --delay-subs 2,500
  subnudge movie.srt --delay-video 12 -o fixed.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runNudge,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.Flags().
		StringP("start-at", "s", "", "Time the chosen anchor line should start at")
	rootCmd.Flags().
		String("delay-subs", "", "Make subtitles appear later by a fixed offset")
	rootCmd.Flags().
		String("delay-video", "", "Make subtitles appear sooner by a fixed offset")
	rootCmd.Flags().
		IntP("num-preview", "n", 10, "Number of lines shown when choosing the anchor")
	rootCmd.Flags().
		StringP("output", "o", "", "Output file path (default: rewrite the input in place)")

	rootCmd.MarkFlagsOneRequired("start-at", "delay-subs", "delay-video")
	rootCmd.MarkFlagsMutuallyExclusive("start-at", "delay-subs", "delay-video")
}
