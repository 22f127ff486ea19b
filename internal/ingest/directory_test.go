package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/heritage-figures/internal/common"
)

func TestListDocuments(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b_report.pdf", "a_report.PDF", ".hidden.pdf", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested.pdf"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c.pdf"), []byte("x"), 0o644))

	docs, stats, err := ListDocuments(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a_report.PDF"),
		filepath.Join(root, "b_report.pdf"),
	}, docs)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(1), stats.Hidden)
}

func TestListDocumentsEmpty(t *testing.T) {
	_, _, err := ListDocuments(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNoDocuments))
	assert.Contains(t, err.Error(), "no PDF files found")
}

func TestListDocumentsMissingRoot(t *testing.T) {
	_, _, err := ListDocuments(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrIO))

	_, _, err = ListDocuments("  ")
	assert.True(t, errors.Is(err, common.ErrInvalidInput))
}
