// Package wavstrip removes metadata chunks from WAV files.
//
// A stripped file keeps only the RIFF/WAVE container, the "fmt " chunk and
// the "data" chunk, copied verbatim and in that order. Everything else
// (LIST/INFO, bext, cart, JUNK, id3 and friends) is dropped.
//
// The core entry point is Process, which converts one file and writes the
// result next to the source:
//
//	res, err := wavstrip.Process("take1.wav")
//	// res.Output == "take1_HeaderRemoved.wav"
//
// Lower level helpers are exposed for in-memory use:
//
//   - FindChunk / LocateChunk / Chunks scan a byte buffer
//   - Strip rebuilds a minimal WAV buffer
//   - Inspect walks a WAV stream and decodes its fmt chunk
package wavstrip
