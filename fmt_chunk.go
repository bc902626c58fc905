package wavstrip

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-audio/riff"
)

const (
	wavFormatPCM        = 1
	wavFormatIEEEFloat  = 3
	wavFormatALaw       = 6
	wavFormatMuLaw      = 7
	wavFormatGSM610     = 0x31
	wavFormatExtensible = 0xFFFE

	fmtBaseSize       = 16
	fmtExtensibleSize = 22
)

var errNilChunk = errors.New("nil chunk pointer")

// FmtChunk stores a decoded WAV fmt chunk, including extensible metadata.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	ExtraData      []byte
	Extensible     *FmtExtensible
}

// FmtExtensible stores WAVE_FORMAT_EXTENSIBLE extra fields.
type FmtExtensible struct {
	ValidBitsPerSample uint16
	ChannelMask        uint32
	SubFormat          [16]byte
}

// EffectiveFormatTag resolves the sub-format of extensible fmt chunks.
func (f *FmtChunk) EffectiveFormatTag() uint16 {
	if f == nil {
		return 0
	}

	if f.FormatTag == wavFormatExtensible && f.Extensible != nil {
		return binary.LittleEndian.Uint16(f.Extensible.SubFormat[:2])
	}

	return f.FormatTag
}

// FormatName returns a short label for the effective format tag.
func (f *FmtChunk) FormatName() string {
	switch tag := f.EffectiveFormatTag(); tag {
	case wavFormatPCM:
		return "PCM"
	case wavFormatIEEEFloat:
		return "IEEE float"
	case wavFormatALaw:
		return "A-law"
	case wavFormatMuLaw:
		return "mu-law"
	case wavFormatGSM610:
		return "GSM 6.10"
	default:
		return fmt.Sprintf("format tag 0x%04X", tag)
	}
}

func decodeFmtChunk(chunk *riff.Chunk) (*FmtChunk, error) {
	if chunk == nil {
		return nil, errNilChunk
	}

	f := &FmtChunk{}

	fields := []struct {
		name string
		dst  any
	}{
		{"wav format", &f.FormatTag},
		{"channels", &f.NumChannels},
		{"sample rate", &f.SampleRate},
		{"avg bytes/sec", &f.AvgBytesPerSec},
		{"block align", &f.BlockAlign},
		{"bit depth", &f.BitsPerSample},
	}

	for _, field := range fields {
		if err := chunk.ReadLE(field.dst); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", field.name, err)
		}
	}

	if chunk.Size <= fmtBaseSize {
		return f, nil
	}

	var extraSize uint16
	if err := chunk.ReadLE(&extraSize); err != nil {
		return nil, fmt.Errorf("failed to read fmt extension size: %w", err)
	}

	f.ExtraData = make([]byte, extraSize)
	if extraSize > 0 {
		if err := chunk.ReadLE(f.ExtraData); err != nil {
			return nil, fmt.Errorf("failed to read fmt extension data: %w", err)
		}
	}

	if f.FormatTag != wavFormatExtensible || extraSize < fmtExtensibleSize {
		return f, nil
	}

	ext := &FmtExtensible{
		ValidBitsPerSample: binary.LittleEndian.Uint16(f.ExtraData[0:2]),
		ChannelMask:        binary.LittleEndian.Uint32(f.ExtraData[2:6]),
	}
	copy(ext.SubFormat[:], f.ExtraData[6:22])
	f.Extensible = ext

	return f, nil
}
