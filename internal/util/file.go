package util

import (
	"bytes"

	"github.com/natefinch/atomic"
)

// WriteFileAtomic writes data to the given path using a temporary file
// and an atomic rename, so readers never observe a partially written
// file.
func WriteFileAtomic(path string, data []byte) error {
	return atomic.WriteFile(path, bytes.NewReader(data))
}
