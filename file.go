package wavstrip

import (
	"fmt"
	"io"
	"os"
)

// ReadFile loads the whole file at path. The file is opened read-only so
// other readers and writers are not locked out.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return b, nil
}

// WriteFile creates path, truncating any existing file, and writes b to it.
// A failed write may leave a partial file behind.
func WriteFile(path string, b []byte) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
