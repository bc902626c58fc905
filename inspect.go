package wavstrip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// ChunkHeader is a chunk ID with its declared payload size.
type ChunkHeader struct {
	ID   [4]byte
	Size uint32
}

func (h ChunkHeader) String() string {
	return fmt.Sprintf("%s(%d)", h.ID[:], h.Size)
}

// Info describes the chunk layout of a WAV stream.
type Info struct {
	// Chunks lists every chunk after the RIFF header in file order.
	Chunks []ChunkHeader
	// Fmt is the decoded fmt chunk, nil if the stream has none.
	Fmt *FmtChunk
	// DataSize is the declared size of the first data chunk.
	DataSize int
	hasData  bool
}

// Format returns the audio format described by the fmt chunk.
func (i *Info) Format() *audio.Format {
	if i == nil || i.Fmt == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(i.Fmt.NumChannels),
		SampleRate:  int(i.Fmt.SampleRate),
	}
}

// Duration estimates the play time from the data size and byte rate.
func (i *Info) Duration() time.Duration {
	if i == nil || i.Fmt == nil || i.Fmt.AvgBytesPerSec == 0 {
		return 0
	}

	return time.Duration(float64(i.DataSize) / float64(i.Fmt.AvgBytesPerSec) * float64(time.Second))
}

// IsMinimal reports whether the stream holds exactly a fmt chunk followed by
// a data chunk.
func (i *Info) IsMinimal() bool {
	if i == nil || len(i.Chunks) != 2 {
		return false
	}

	return i.Chunks[0].ID == CIDFmt && i.Chunks[1].ID == CIDData
}

// Inspect walks the chunks of a WAV stream, decoding the fmt chunk and
// draining everything else. Odd sized chunks are expected to carry a pad
// byte, as riff requires; only the final pad byte may be missing. A stream
// ending inside a chunk header or payload fails with io.ErrUnexpectedEOF.
func Inspect(r io.Reader) (*Info, error) {
	parser := riff.New(r)

	if err := parser.ParseHeaders(); err != nil {
		if parser.ID != riff.RiffID && parser.ID != [4]byte{} {
			return nil, fmt.Errorf("%w: %w", ErrNotRIFF, err)
		}

		return nil, fmt.Errorf("failed to read RIFF header: %w", err)
	}

	if parser.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: got %q", ErrNotWAVE, parser.Format[:])
	}

	info := &Info{}

	for {
		id, size, err := readChunkHeader(r)
		if errors.Is(err, io.EOF) {
			return info, nil
		}

		if err != nil {
			return info, fmt.Errorf("error reading chunk header - %w", err)
		}

		info.Chunks = append(info.Chunks, ChunkHeader{ID: id, Size: size})

		padded := int64(size) + int64(size%2)
		payload := &io.LimitedReader{R: r, N: padded}
		chunk := &riff.Chunk{
			ID:   id,
			Size: int(padded),
			R:    payload,
		}

		if err := info.consume(chunk, size); err != nil {
			return info, err
		}

		if payload.N > int64(size%2) {
			return info, fmt.Errorf("%q chunk declares %d bytes, %d missing: %w",
				id[:], size, payload.N, io.ErrUnexpectedEOF)
		}
	}
}

// readChunkHeader reads a chunk ID and its payload size. Unlike
// riff.Parser.IDnSize it reports a header cut short as io.ErrUnexpectedEOF.
func readChunkHeader(r io.Reader) ([4]byte, uint32, error) {
	var (
		id  [4]byte
		hdr [chunkHeaderSize]byte
	)

	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return id, 0, err
	}

	copy(id[:], hdr[0:4])

	return id, binary.LittleEndian.Uint32(hdr[4:8]), nil
}

func (i *Info) consume(chunk *riff.Chunk, size uint32) error {
	defer chunk.Drain()

	switch {
	case chunk.ID == CIDFmt && i.Fmt == nil:
		f, err := decodeFmtChunk(chunk)
		if err != nil {
			return fmt.Errorf("failed to decode fmt chunk: %w", err)
		}

		i.Fmt = f
	case chunk.ID == CIDData && !i.hasData:
		i.DataSize = int(size)
		i.hasData = true
	}

	return nil
}

func verifyStripped(b []byte, dataChunk Chunk) (*Info, error) {
	info, err := Inspect(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerify, err)
	}

	if !info.IsMinimal() {
		return nil, fmt.Errorf("%w: chunks %v", ErrVerify, info.Chunks)
	}

	if info.Fmt == nil || info.DataSize != dataChunk.PayloadSize() {
		return nil, fmt.Errorf("%w: data size %d, want %d", ErrVerify, info.DataSize, dataChunk.PayloadSize())
	}

	return info, nil
}
