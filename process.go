package wavstrip

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultSuffix is appended to the source name to build the output name.
	DefaultSuffix = "_HeaderRemoved"

	waveExt = ".wav"
)

// Options configures a Processor.
type Options struct {
	// Suffix is inserted between the file name and its extension.
	// Empty means DefaultSuffix.
	Suffix string
	// Verify re-parses each stripped buffer before it is written.
	Verify bool
	// Workers bounds the number of files ProcessAll converts at once.
	// Values below 2 convert sequentially.
	Workers int
	// DryRun locates chunks without writing any output.
	DryRun bool
}

// Result describes one conversion.
type Result struct {
	Source string
	// Output is the destination path, empty when skipped or when the
	// source couldn't be stripped.
	Output string
	// Skipped is set for paths that aren't ".wav" files.
	Skipped bool
	// Removed lists the source chunks left out of the output.
	Removed []Chunk
	// Size is the length of the stripped buffer.
	Size int
	// Info describes the stripped buffer when Options.Verify is set.
	Info *Info
	// Err is only set by ProcessAll; Process returns it instead.
	Err error
}

// Processor strips WAV files. The zero value uses default options.
type Processor struct {
	opts Options
}

// NewProcessor returns a Processor using opts.
func NewProcessor(opts Options) *Processor {
	return &Processor{opts: opts}
}

var defaultProcessor = &Processor{}

// Process strips the file at path with default options.
func Process(path string) (Result, error) {
	return defaultProcessor.Process(path)
}

// Process strips the file at path and writes the result next to it.
// Paths without a ".wav" extension are skipped without error. The source
// file is never modified.
func (p *Processor) Process(path string) (Result, error) {
	res := Result{Source: path}

	if !IsWavePath(path) {
		res.Skipped = true
		return res, nil
	}

	src, err := ReadFile(path)
	if err != nil {
		return res, err
	}

	fmtChunk, dataChunk, err := locateCoreChunks(src)
	if err != nil {
		return res, err
	}

	out := assemble(src, fmtChunk, dataChunk)
	res.Removed = removedChunks(src, fmtChunk, dataChunk)
	res.Size = len(out)

	if p.opts.Verify {
		info, err := verifyStripped(out, dataChunk)
		if err != nil {
			return res, err
		}

		res.Info = info
	}

	res.Output = OutputPath(path, p.suffix())
	if p.opts.DryRun {
		return res, nil
	}

	if err := WriteFile(res.Output, out); err != nil {
		return res, err
	}

	return res, nil
}

func (p *Processor) suffix() string {
	if p.opts.Suffix == "" {
		return DefaultSuffix
	}

	return p.opts.Suffix
}

// IsWavePath reports whether path names a file Process converts: a non blank
// path whose extension is exactly ".wav".
func IsWavePath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	return filepath.Ext(path) == waveExt
}

// OutputPath returns the destination for src: the same directory, with
// suffix inserted before the extension.
func OutputPath(src, suffix string) string {
	ext := filepath.Ext(src)
	base := filepath.Base(src)
	name := base[:len(base)-len(ext)]

	return filepath.Join(filepath.Dir(src), name+suffix+ext)
}
