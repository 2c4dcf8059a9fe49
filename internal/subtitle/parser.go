package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ParseFile reads an SRT file into an ordered entry sequence.
func ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse groups blank-line-separated blocks into entries: numeric index
// line, "start --> end" line, then zero or more caption lines. Entries
// are returned in file order with their index fields preserved verbatim;
// the sequence is never reordered or deduplicated.
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	var entries []Entry
	var block []string
	blockStart := 0
	lineNum := 0

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		entry, err := parseBlock(block, blockStart)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		block = nil
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		if len(block) == 0 {
			blockStart = lineNum
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading subtitle file: %w", err)
	}

	// last block when the file has no trailing blank line
	if err := flush(); err != nil {
		return nil, err
	}

	return entries, nil
}

func parseBlock(lines []string, startLine int) (Entry, error) {
	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Entry{}, &ParseError{
			Line:   startLine,
			Reason: fmt.Sprintf("expected numeric index, got %q", lines[0]),
		}
	}

	if len(lines) < 2 {
		return Entry{}, &ParseError{
			Line:   startLine,
			Reason: fmt.Sprintf("entry %d is missing its timestamp line", index),
		}
	}

	start, end, err := parseTimestampLine(lines[1])
	if err != nil {
		return Entry{}, &ParseError{
			Line:   startLine + 1,
			Reason: err.Error(),
		}
	}

	entry := Entry{Index: index, Start: start, End: end}
	if len(lines) > 2 {
		entry.Lines = append(entry.Lines, lines[2:]...)
	}
	return entry, nil
}

func parseTimestampLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected \"start --> end\", got %q", line)
	}

	start, err := ParseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
