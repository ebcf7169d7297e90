package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteFileAtomic(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "testfile")
	data := []byte("temp,duty\n50,20\n")

	// WHEN
	err := WriteFileAtomic(filePath, data)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, data, content)
}

func TestWriteFileAtomicReplacesExistingFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "testfile")
	err := os.WriteFile(filePath, []byte("old content"), 0o644)
	assert.NoError(t, err)

	// WHEN
	err = WriteFileAtomic(filePath, []byte("new content"))

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, []byte("new content"), content)
}
