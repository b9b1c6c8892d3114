package utils

import (
	"bytes"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteFileAtomic replaces the file at path with data using a temp-file and
// rename, so a failure mid-write never leaves a half-written file behind.
func WriteFileAtomic(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
