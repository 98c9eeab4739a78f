package vaultfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptvault-labs/scriptvault-cli/internal/core/domain"
)

func TestWriter_WriteAndRead(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	rel, err := w.Write("Network", "Test_Link.ps1", []byte("Test-NetConnection"))
	require.NoError(t, err)
	assert.Equal(t, "Network/Test_Link.ps1", rel)

	data, err := w.Read(rel)
	require.NoError(t, err)
	assert.Equal(t, "Test-NetConnection", string(data))

	assert.True(t, w.Exists("Network", "Test_Link.ps1"))
	assert.False(t, w.Exists("Network", "Other.ps1"))
}

func TestWriter_UncategorisedAtRoot(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)

	rel, err := w.Write("", "loose.txt", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "loose.txt", rel)

	_, err = os.Stat(filepath.Join(dir, "loose.txt"))
	assert.NoError(t, err)
}

func TestWriter_RefusesOverwrite(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = w.Write("Backup", "same.ps1", []byte("one"))
	require.NoError(t, err)

	_, err = w.Write("Backup", "same.ps1", []byte("two"))
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestWriter_ReadMissing(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = w.Read("nope/missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
