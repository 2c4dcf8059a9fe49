package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"movie.srt", "movie_orig.srt"},
		{"/subs/movie.srt", "/subs/movie_orig.srt"},
		{"movie.en.srt", "movie.en_orig.srt"},
		{"noext", "noext_orig"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Path(tt.input))
		})
	}
}

func TestCreateCopiesOriginal(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "movie.srt")
	content := []byte("1\n00:00:01,000 --> 00:00:02,000\nHello.\n")
	require.NoError(t, os.WriteFile(input, content, 0644))

	backupPath, err := Create(input)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "movie_orig.srt"), backupPath)

	copied, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, content, copied)

	// input untouched
	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, content, original)
}

func TestCreateRefusesToClobberBackup(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "movie.srt")
	require.NoError(t, os.WriteFile(input, []byte("current"), 0644))

	backupPath := filepath.Join(tmpDir, "movie_orig.srt")
	require.NoError(t, os.WriteFile(backupPath, []byte("true original"), 0644))

	_, err := Create(input)
	require.ErrorIs(t, err, ErrBackupExists)

	// the first run's backup survives
	kept, readErr := os.ReadFile(backupPath)
	require.NoError(t, readErr)
	assert.Equal(t, "true original", string(kept))
}

func TestCreateFailsOnMissingInput(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "absent.srt"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBackupExists)
}
