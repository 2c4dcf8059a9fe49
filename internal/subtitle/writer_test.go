package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteFile(t *testing.T) {
	entries := []Entry{
		{
			Index: 1,
			Start: 5 * time.Second,
			End:   7 * time.Second,
			Lines: []string{"Hello."},
		},
		{
			Index: 2,
			Start: 10 * time.Second,
			End:   12*time.Second + 500*time.Millisecond,
			Lines: []string{"Two lines", "of text."},
		},
	}

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.srt")

	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := `1
00:00:05,000 --> 00:00:07,000
Hello.

2
00:00:10,000 --> 00:00:12,500
Two lines
of text.
`
	if string(got) != want {
		t.Errorf("output mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.srt")

	entries := []Entry{{Index: 1, Start: 0, End: time.Second, Lines: []string{"x"}}}
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	files, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	if len(files) != 1 || files[0].Name() != "out.srt" {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name())
		}
		t.Errorf("expected only out.srt, got %v", names)
	}
}

func TestWriteFileOverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.srt")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	entries := []Entry{{Index: 1, Start: 0, End: time.Second, Lines: []string{"new"}}}
	if err := WriteFile(path, entries); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(got) == "old content" {
		t.Error("WriteFile did not replace the existing file")
	}
}
