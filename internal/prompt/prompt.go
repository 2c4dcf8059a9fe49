package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/subnudge/subnudge/internal/subtitle"
)

// SelectionError reports an anchor choice outside the preview range.
type SelectionError struct {
	Choice int
	Max    int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf(
		"selection %d out of range: expected a number between 1 and %d",
		e.Choice,
		e.Max,
	)
}

var (
	numberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Preview renders the first n entries as a numbered list. Preview numbers
// are positions in the file, not the entries' own index fields, so
// selection keeps working when a file's numbering is non-contiguous or
// starts above 1.
func Preview(entries []subtitle.Entry, n int) string {
	if n > len(entries) {
		n = len(entries)
	}

	var sb strings.Builder
	for i, entry := range entries[:n] {
		text := ""
		if len(entry.Lines) > 0 {
			text = entry.Lines[0]
		}
		fmt.Fprintf(&sb, "%s %s  %s\n",
			numberStyle.Render(fmt.Sprintf("%2d:", i+1)),
			timeStyle.Render(subtitle.FormatTimestamp(entry.Start)),
			text,
		)
	}
	return sb.String()
}

// Validate range-checks a 1-based preview choice.
func Validate(choice, max int) error {
	if choice < 1 || choice > max {
		return &SelectionError{Choice: choice, Max: max}
	}
	return nil
}

// Select runs the blocking read-validate loop: prompt on w, read a line
// from r, repeat until the input is a valid 1-based preview choice. Empty
// input defaults to the first entry. Returns the zero-based position of
// the chosen entry.
func Select(r io.Reader, w io.Writer, max int, target string) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Which line should start at %s?\nYour choice 1-%d [1]: ", target, max)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read selection: %w", err)
			}
			return 0, fmt.Errorf("no selection: %w", io.ErrUnexpectedEOF)
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return 0, nil
		}

		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(w, "expected a number between 1 and %d, got %q\n", max, input)
			continue
		}
		if err := Validate(choice, max); err != nil {
			fmt.Fprintln(w, err)
			continue
		}

		// choices are 1-based, the entry sequence is 0-based
		return choice - 1, nil
	}
}
