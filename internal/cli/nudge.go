package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/subnudge/subnudge/internal/backup"
	"github.com/subnudge/subnudge/internal/prompt"
	"github.com/subnudge/subnudge/internal/shift"
	"github.com/subnudge/subnudge/internal/subtitle"
)

func runNudge(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	startAt, _ := cmd.Flags().GetString("start-at")
	delaySubs, _ := cmd.Flags().GetString("delay-subs")
	delayVideo, _ := cmd.Flags().GetString("delay-video")
	numPreview, _ := cmd.Flags().GetInt("num-preview")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("cannot read subtitle file: %w", err)
	}
	if numPreview < 1 {
		return fmt.Errorf("num-preview must be positive, got %d", numPreview)
	}
	if outputPath == "" {
		outputPath = inputPath
	}

	entries, err := subtitle.ParseFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s contains no subtitle entries", inputPath)
	}

	logger.Debugw("Parsed subtitle file",
		"path", inputPath,
		"entries", len(entries),
	)

	var delta time.Duration
	switch {
	case startAt != "":
		target, err := subtitle.ParseLenientTimestamp(startAt)
		if err != nil {
			return err
		}

		previewSize := numPreview
		if previewSize > len(entries) {
			previewSize = len(entries)
		}

		fmt.Printf("These are the first %d lines:\n\n%s\n", previewSize, prompt.Preview(entries, previewSize))

		pos, err := prompt.Select(os.Stdin, os.Stdout, previewSize, subtitle.FormatTimestamp(target))
		if err != nil {
			return err
		}
		delta = shift.Delta(target, entries[pos].Start)

	case delaySubs != "":
		offset, err := subtitle.ParseLenientTimestamp(delaySubs)
		if err != nil {
			return err
		}
		delta = offset

	default:
		offset, err := subtitle.ParseLenientTimestamp(delayVideo)
		if err != nil {
			return err
		}
		delta = -offset
	}

	logger.Infow("Applying offset",
		"delta", delta.String(),
	)

	if clamped := shift.Apply(entries, delta); clamped > 0 {
		logger.Warnw("Entries shifted before zero were pinned to 00:00:00,000",
			"entries", clamped,
		)
	}

	// nothing on disk is touched until here; the backup-then-rename pair
	// keeps the original intact if either step fails
	var backupPath string
	if outputPath == inputPath {
		backupPath, err = backup.Create(inputPath)
		if err != nil {
			return err
		}
	}

	if err := subtitle.WriteFile(outputPath, entries); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Offset subtitles written to %s\n", absOutput)
	if backupPath != "" {
		fmt.Printf("  Original preserved at %s\n", backupPath)
	}
	fmt.Printf("  Entries: %d\n", len(entries))

	return nil
}
