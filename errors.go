package wavstrip

import (
	"errors"
	"fmt"
)

var (
	// ErrFileTooSmall is returned when a buffer can't hold a RIFF header.
	ErrFileTooSmall = errors.New("file too small for a RIFF header")
	// ErrNotRIFF is returned when the buffer doesn't start with "RIFF".
	ErrNotRIFF = errors.New("missing RIFF tag")
	// ErrNotWAVE is returned when the RIFF form type isn't "WAVE".
	ErrNotWAVE = errors.New("missing WAVE tag")
	// ErrMalformedWave is matched by every chunk lookup failure.
	ErrMalformedWave = errors.New("malformed wave file")
	// ErrChunkNotFound indicates that a required chunk is absent.
	ErrChunkNotFound = errors.New("chunk not found")
	// ErrChunkOutOfBounds indicates a chunk whose declared size runs past the
	// end of the file.
	ErrChunkOutOfBounds = errors.New("chunk exceeds file size")
	// ErrVerify is returned when a stripped buffer doesn't parse back as a
	// minimal fmt+data wave file.
	ErrVerify = errors.New("stripped output failed verification")
)

// ChunkError reports a failed lookup of a required chunk.
type ChunkError struct {
	ID     [4]byte
	Offset int
	Err    error
}

func (e *ChunkError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("%s: %q chunk at offset %d: %v", ErrMalformedWave, e.ID[:], e.Offset, e.Err)
	}

	return fmt.Sprintf("%s: %q %v", ErrMalformedWave, e.ID[:], e.Err)
}

// Unwrap exposes both the cause and ErrMalformedWave to errors.Is.
func (e *ChunkError) Unwrap() []error {
	return []error{e.Err, ErrMalformedWave}
}
