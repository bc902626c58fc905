package wavstrip

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestProcessWritesStrippedCopy(t *testing.T) {
	dir := t.TempDir()
	in := buildWave(listTestChunk(), fmtTestChunk(), dataTestChunk(1, 2, 3, 4))
	src := writeTestFile(t, dir, "take1.wav", in)

	res, err := Process(src)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	wantPath := filepath.Join(dir, "take1_HeaderRemoved.wav")
	if res.Output != wantPath {
		t.Fatalf("output path=%q, want %q", res.Output, wantPath)
	}

	if res.Skipped || res.Size != len(minimalWave()) {
		t.Fatalf("unexpected result %+v", res)
	}

	if len(res.Removed) != 1 || res.Removed[0].String() != "LIST(24)" {
		t.Fatalf("unexpected removed chunks %v", res.Removed)
	}

	out, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(out, minimalWave()) {
		t.Fatalf("unexpected output\n got %x\nwant %x", out, minimalWave())
	}

	after, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(after, in) {
		t.Fatal("source file was modified")
	}
}

func TestProcessSkipsNonWavePaths(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
	}{
		{"upper case extension", "a.WAV"},
		{"mp3", "b.mp3"},
		{"no extension", "c"},
		{"wave extension", "d.wave"},
	}

	for _, tt := range tests {
		writeTestFile(t, dir, tt.file, minimalWave())
	}

	before := len(dirEntries(t, dir))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Process(filepath.Join(dir, tt.file))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !res.Skipped || res.Output != "" {
				t.Fatalf("expected a skip, got %+v", res)
			}
		})
	}

	for _, blank := range []string{"", "   "} {
		res, err := Process(blank)
		if err != nil || !res.Skipped {
			t.Fatalf("blank path %q: res=%+v err=%v", blank, res, err)
		}
	}

	if got := len(dirEntries(t, dir)); got != before {
		t.Fatalf("skipped paths created files: %v", dirEntries(t, dir))
	}
}

func TestProcessMissingFile(t *testing.T) {
	_, err := Process(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestProcessMalformedWritesNothing(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "nodata.wav", buildWave(fmtTestChunk(), listTestChunk()))

	res, err := Process(src)
	if !errors.Is(err, ErrMalformedWave) {
		t.Fatalf("expected ErrMalformedWave, got %v", err)
	}

	if res.Output != "" {
		t.Fatalf("expected no output path, got %q", res.Output)
	}

	if names := dirEntries(t, dir); len(names) != 1 {
		t.Fatalf("expected only the source file, got %v", names)
	}
}

func TestProcessOutputIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "loop.wav", buildWave(fmtTestChunk(), testChunk{id: "JUNK", data: make([]byte, 12)}, dataTestChunk(7, 7)))

	first, err := Process(src)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}

	second, err := Process(first.Output)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	if second.Output != filepath.Join(dir, "loop_HeaderRemoved_HeaderRemoved.wav") {
		t.Fatalf("unexpected second output %q", second.Output)
	}

	a, _ := os.ReadFile(first.Output)
	b, _ := os.ReadFile(second.Output)

	if len(a) == 0 || !bytes.Equal(a, b) {
		t.Fatalf("outputs differ\n first %x\nsecond %x", a, b)
	}

	if len(second.Removed) != 0 {
		t.Fatalf("second pass removed %v", second.Removed)
	}
}

func TestProcessOverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "a.wav", minimalWave())
	writeTestFile(t, dir, "a_HeaderRemoved.wav", bytes.Repeat([]byte{0xFF}, 200))

	res, err := Process(src)
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	out, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(out, minimalWave()) {
		t.Fatalf("existing output not replaced, got %d bytes", len(out))
	}
}

func TestProcessorOptions(t *testing.T) {
	dir := t.TempDir()
	src := writeTestFile(t, dir, "b.wav", buildWave(listTestChunk(), fmtTestChunk(), dataTestChunk(1, 2)))

	t.Run("suffix and verify", func(t *testing.T) {
		res, err := NewProcessor(Options{Suffix: "_clean", Verify: true}).Process(src)
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		if res.Output != filepath.Join(dir, "b_clean.wav") {
			t.Fatalf("unexpected output %q", res.Output)
		}

		if res.Info == nil || !res.Info.IsMinimal() || res.Info.Format().SampleRate != 8000 {
			t.Fatalf("unexpected info %+v", res.Info)
		}

		if _, err := os.Stat(res.Output); err != nil {
			t.Fatalf("output missing: %v", err)
		}
	})

	t.Run("dry run", func(t *testing.T) {
		res, err := NewProcessor(Options{Suffix: "_dry", DryRun: true}).Process(src)
		if err != nil {
			t.Fatalf("process: %v", err)
		}

		if res.Output != filepath.Join(dir, "b_dry.wav") || len(res.Removed) != 1 {
			t.Fatalf("unexpected result %+v", res)
		}

		if _, err := os.Stat(res.Output); !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("dry run wrote %s", res.Output)
		}
	})
}

func TestProcessVerifyRejectsUnpaddedFmt(t *testing.T) {
	dir := t.TempDir()
	odd := testChunk{id: "fmt ", data: append(pcmFmtPayload(1, 8000, 16), 0, 0, 0)}
	src := writeTestFile(t, dir, "odd.wav", buildWave(odd, dataTestChunk(1, 2)))

	_, err := NewProcessor(Options{Verify: true}).Process(src)
	if !errors.Is(err, ErrVerify) {
		t.Fatalf("expected ErrVerify, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "odd_HeaderRemoved.wav")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("verification failure still wrote output")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		src    string
		suffix string
		want   string
	}{
		{filepath.Join("dir", "a.wav"), DefaultSuffix, filepath.Join("dir", "a_HeaderRemoved.wav")},
		{"a.wav", DefaultSuffix, "a_HeaderRemoved.wav"},
		{filepath.Join("dir", "a.b.wav"), "_x", filepath.Join("dir", "a.b_x.wav")},
		{filepath.Join("dir", "noext"), "_x", filepath.Join("dir", "noext_x")},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := OutputPath(tt.src, tt.suffix); got != tt.want {
				t.Fatalf("OutputPath(%q)=%q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestIsWavePath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.wav", true},
		{filepath.Join("x", "y.z.wav"), true},
		{"a.WAV", false},
		{"a.Wav", false},
		{"a.wav.bak", false},
		{"wav", false},
		{"", false},
		{" \t", false},
	}

	for _, tt := range tests {
		if got := IsWavePath(tt.path); got != tt.want {
			t.Fatalf("IsWavePath(%q)=%v, want %v", tt.path, got, tt.want)
		}
	}
}
