package wavstrip

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

// Strip returns a new buffer holding only the RIFF/WAVE header, the fmt chunk
// and the data chunk of src. src is not modified.
func Strip(src []byte) ([]byte, error) {
	fmtChunk, dataChunk, err := locateCoreChunks(src)
	if err != nil {
		return nil, err
	}

	return assemble(src, fmtChunk, dataChunk), nil
}

func locateCoreChunks(src []byte) (Chunk, Chunk, error) {
	if err := checkHeader(src); err != nil {
		return Chunk{}, Chunk{}, err
	}

	fmtChunk, err := LocateChunk(src, CIDFmt)
	if err != nil {
		return Chunk{}, Chunk{}, err
	}

	dataChunk, err := LocateChunk(src, CIDData)
	if err != nil {
		return Chunk{}, Chunk{}, err
	}

	return fmtChunk, dataChunk, nil
}

func checkHeader(src []byte) error {
	if len(src) < riffHeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrFileTooSmall, len(src))
	}

	if !bytes.Equal(src[0:4], riff.RiffID[:]) {
		return fmt.Errorf("%w: got %q", ErrNotRIFF, src[0:4])
	}

	if !bytes.Equal(src[8:12], riff.WavFormatID[:]) {
		return fmt.Errorf("%w: got %q", ErrNotWAVE, src[8:12])
	}

	return nil
}

// assemble expects both chunks to lie within src.
func assemble(src []byte, fmtChunk, dataChunk Chunk) []byte {
	out := make([]byte, riffHeaderSize+fmtChunk.Length+dataChunk.Length)

	copy(out[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))
	copy(out[8:12], riff.WavFormatID[:])

	n := riffHeaderSize
	n += copy(out[n:], src[fmtChunk.Offset:fmtChunk.Offset+fmtChunk.Length])
	copy(out[n:], src[dataChunk.Offset:dataChunk.Offset+dataChunk.Length])

	return out
}

// removedChunks lists the chunks of src that Strip drops.
func removedChunks(src []byte, kept ...Chunk) []Chunk {
	var removed []Chunk

	for _, c := range Chunks(src) {
		if isKept(c, kept) {
			continue
		}

		removed = append(removed, c)
	}

	return removed
}

func isKept(c Chunk, kept []Chunk) bool {
	for _, k := range kept {
		if c.Offset == k.Offset {
			return true
		}
	}

	return false
}
