package wavstrip

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

type testChunk struct {
	id   string
	data []byte
	// pad appends a zero byte after odd sized payloads.
	pad bool
}

func (c testChunk) bytes() []byte {
	b := make([]byte, 8, 8+len(c.data)+1)
	copy(b[0:4], c.id)
	binary.LittleEndian.PutUint32(b[4:8], uint32(len(c.data)))
	b = append(b, c.data...)

	if c.pad && len(c.data)%2 == 1 {
		b = append(b, 0)
	}

	return b
}

// buildWave assembles a RIFF/WAVE file with a correct container size.
func buildWave(chunks ...testChunk) []byte {
	out := make([]byte, 12)
	copy(out[0:4], "RIFF")
	copy(out[8:12], "WAVE")

	for _, c := range chunks {
		out = append(out, c.bytes()...)
	}

	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func pcmFmtPayload(channels uint16, sampleRate uint32, bitDepth uint16) []byte {
	blockAlign := channels * bitDepth / 8

	b := make([]byte, 16)
	binary.LittleEndian.PutUint16(b[0:2], wavFormatPCM)
	binary.LittleEndian.PutUint16(b[2:4], channels)
	binary.LittleEndian.PutUint32(b[4:8], sampleRate)
	binary.LittleEndian.PutUint32(b[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(b[12:14], blockAlign)
	binary.LittleEndian.PutUint16(b[14:16], bitDepth)

	return b
}

func fmtTestChunk() testChunk {
	return testChunk{id: "fmt ", data: pcmFmtPayload(1, 8000, 16)}
}

func dataTestChunk(samples ...byte) testChunk {
	return testChunk{id: "data", data: samples}
}

func listTestChunk() testChunk {
	payload := append([]byte("INFO"), testChunk{id: "INAM", data: []byte("track title\x00")}.bytes()...)
	return testChunk{id: "LIST", data: payload}
}

// minimalWave is a fmt chunk followed by a 4-byte data chunk.
func minimalWave() []byte {
	return buildWave(fmtTestChunk(), dataTestChunk(1, 2, 3, 4))
}

func writeTestFile(t *testing.T, dir, name string, b []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return names
}
