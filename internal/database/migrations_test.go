package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesOrderedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_add_index.sql", "001_create_content.sql", "notes.txt", "010_widen_topic.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	files, err := migrationFiles(dir)
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	assert.Equal(t, []string{"001_create_content.sql", "002_add_index.sql", "010_widen_topic.sql"}, names)
}

func TestMigrationFilesEmptyDir(t *testing.T) {
	files, err := migrationFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}
