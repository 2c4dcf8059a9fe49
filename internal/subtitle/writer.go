package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Render serializes entries back to SRT: verbatim index line, arrow-
// separated timestamp line, caption lines, one blank line between blocks.
// Output is LF-normalized and ends with a single trailing newline, so a
// parse of LF input followed by Render reproduces the file byte for byte.
func Render(entries []Entry) []byte {
	var sb strings.Builder
	for i, entry := range entries {
		if i > 0 {
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "%d\n", entry.Index)
		fmt.Fprintf(&sb, "%s --> %s\n",
			FormatTimestamp(entry.Start),
			FormatTimestamp(entry.End))

		for _, line := range entry.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return []byte(sb.String())
}

// WriteFile writes the rendered entries to path via a temp file in the
// same directory followed by a rename, so a failed write never leaves a
// half-written subtitle file behind.
func WriteFile(path string, entries []Entry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(Render(entries)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write subtitles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write subtitles: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
