package wavstrip

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	// riffHeaderSize covers "RIFF", the container size and "WAVE".
	riffHeaderSize = 12
	// chunkHeaderSize covers a chunk ID and its little-endian payload size.
	chunkHeaderSize = 8
)

var (
	// CIDFmt is the chunk ID of the format chunk.
	CIDFmt = riff.FmtID
	// CIDData is the chunk ID of the sample data chunk.
	CIDData = riff.DataFormatID
)

// Chunk locates a chunk inside a WAV byte buffer.
// Length includes the 8-byte chunk header and Size is the declared payload
// size. Length is only known to fit in an int once LocateChunk has checked
// End against the buffer. The zero value means not found.
type Chunk struct {
	ID     [4]byte
	Offset int
	Length int
	Size   uint32
}

// IsZero reports whether c is the "not found" descriptor.
func (c Chunk) IsZero() bool {
	return c.Offset == 0 && c.Length == 0
}

// PayloadSize returns the declared payload size of the chunk.
func (c Chunk) PayloadSize() int {
	return int(c.Size)
}

// End returns the offset just past the chunk payload.
func (c Chunk) End() int64 {
	return int64(c.Offset) + chunkHeaderSize + int64(c.Size)
}

func (c Chunk) String() string {
	return fmt.Sprintf("%s(%d)", c.ID[:], c.Size)
}

// FindChunk scans buf, starting right after the RIFF header, for the first
// chunk with the given ID. Declared sizes are trusted and no pad byte is
// skipped after odd sized chunks. A miss returns the zero Chunk.
func FindChunk(buf []byte, id [4]byte) Chunk {
	var found Chunk

	walkChunks(buf, func(c Chunk) bool {
		if c.ID == id {
			found = c
			return false
		}

		return true
	})

	return found
}

// LocateChunk is like FindChunk but fails when the chunk is missing or when
// its declared size runs past the end of buf.
func LocateChunk(buf []byte, id [4]byte) (Chunk, error) {
	c := FindChunk(buf, id)
	if c.IsZero() {
		return Chunk{}, &ChunkError{ID: id, Err: ErrChunkNotFound}
	}

	if c.End() > int64(len(buf)) {
		return Chunk{}, &ChunkError{ID: id, Offset: c.Offset, Err: ErrChunkOutOfBounds}
	}

	return c, nil
}

// Chunks lists every chunk visited by a FindChunk style scan of buf, in
// file order. The last entry may extend past the end of buf.
func Chunks(buf []byte) []Chunk {
	var out []Chunk

	walkChunks(buf, func(c Chunk) bool {
		out = append(out, c)
		return true
	})

	return out
}

// walkChunks calls fn for each chunk header found after the RIFF header
// until fn returns false or fewer than 8 bytes remain.
func walkChunks(buf []byte, fn func(Chunk) bool) {
	offset := int64(riffHeaderSize)
	end := int64(len(buf))

	for offset+chunkHeaderSize <= end {
		var c Chunk
		copy(c.ID[:], buf[offset:offset+4])

		size := int64(binary.LittleEndian.Uint32(buf[offset+4 : offset+8]))
		c.Offset = int(offset)
		c.Size = uint32(size)
		c.Length = int(size + chunkHeaderSize)

		if !fn(c) {
			return
		}

		offset += size + chunkHeaderSize
	}
}
