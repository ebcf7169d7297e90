package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteFilePng(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "curves.png")

	// WHEN
	err := WriteFile(testSeries(), path)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	info, err := os.Stat(path)
	if err != nil {
		assert.Fail(t, err.Error())
	}
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteFileSvg(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "curves.svg")

	// WHEN
	err := WriteFile(testSeries(), path)
	if err != nil {
		assert.Fail(t, err.Error())
	}

	// THEN
	content, err := os.ReadFile(path)
	if err != nil {
		assert.Fail(t, err.Error())
	}
	assert.Contains(t, string(content), "<svg")
}

func TestWriteFileUnsupportedFormat(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "curves.gif")

	// WHEN
	err := WriteFile(testSeries(), path)

	// THEN
	assert.EqualError(t, err, "unsupported chart file format: gif, use one of: png | svg | pdf")
}
