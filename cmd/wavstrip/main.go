// This tool removes metadata chunks from wav files. For every source file a
// copy holding only the fmt and data chunks is written next to it, named
// after the source with a "_HeaderRemoved" suffix.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/cwbudde/wavstrip"
	"github.com/cwbudde/wavstrip/internal/config"
)

const missingPathMessage = "You must pass the path of at least one wav file or directory"

var (
	errMissingPath = errors.New("missing path argument")
	errUsage       = errors.New("usage error")
	errFailed      = errors.New("failed to strip some files")
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)

	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return
	case errors.Is(err, errMissingPath):
		fmt.Println(missingPathMessage)
		os.Exit(2)
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	case errors.Is(err, errFailed):
		os.Exit(1)
	default:
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("wavstrip", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wavstrip [flags] <file.wav|dir>...")
		flags.PrintDefaults()
	}

	configPath := flags.StringP("config", "c", "", "TOML config file")
	workers := flags.IntP("workers", "j", 1, "Number of files to convert in parallel")
	suffix := flags.String("suffix", wavstrip.DefaultSuffix, "Suffix inserted before the output file extension")
	verify := flags.Bool("verify", false, "Re-parse each stripped file before writing it")
	dryRun := flags.BoolP("dry-run", "n", false, "Report the chunks that would be removed without writing anything")
	quiet := flags.BoolP("quiet", "q", false, "Only report errors")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}

		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if flags.NArg() < 1 {
		return errMissingPath
	}

	cfg := config.Default()

	if *configPath != "" {
		var err error

		cfg, err = config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("%w: config: %w", errUsage, err)
		}
	}

	if flags.Changed("workers") {
		cfg.Processing.Workers = *workers
	}

	if flags.Changed("suffix") {
		cfg.Output.Suffix = *suffix
	}

	if flags.Changed("verify") {
		cfg.Processing.Verify = *verify
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	logOut := stderr
	if *quiet {
		logOut = io.Discard
	}

	logger := log.New(logOut, "wavstrip ", log.LstdFlags)

	opts := cfg.Options()
	opts.DryRun = *dryRun

	paths, failures := expandPaths(flags.Args(), opts.Suffix)
	results := append(failures, wavstrip.NewProcessor(opts).ProcessAll(paths)...)

	failed := 0

	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++

			fmt.Fprintf(stderr, "error: %s: %v\n", res.Source, res.Err)
		case res.Skipped:
			logger.Printf("skipping %s: not a .wav file", res.Source)
		case opts.DryRun:
			fmt.Fprintf(stdout, "%s -> %s (%d bytes), removes %s\n",
				res.Source, res.Output, res.Size, describeChunks(res.Removed))
		default:
			logger.Printf("stripped %s -> %s, removed %s", res.Source, res.Output, describeChunks(res.Removed))
		}

		if res.Info != nil && res.Err == nil {
			logger.Printf("%s: %s", res.Output, describeInfo(res.Info))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errFailed, failed, len(results))
	}

	return nil
}

// expandPaths replaces directory arguments with the wav files they contain,
// leaving out files that already carry the output suffix.
func expandPaths(args []string, suffix string) ([]string, []wavstrip.Result) {
	var (
		paths    []string
		failures []wavstrip.Result
	)

	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil || !fi.IsDir() {
			paths = append(paths, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			failures = append(failures, wavstrip.Result{Source: arg, Err: err})
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !wavstrip.IsWavePath(name) {
				continue
			}

			if strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), suffix) {
				continue
			}

			paths = append(paths, filepath.Join(arg, name))
		}
	}

	return paths, failures
}

func describeInfo(info *wavstrip.Info) string {
	format := info.Format()

	return fmt.Sprintf("%s, %d ch, %d Hz, %d bit, %v",
		info.Fmt.FormatName(), format.NumChannels, format.SampleRate,
		info.Fmt.BitsPerSample, info.Duration().Round(time.Millisecond))
}

func describeChunks(chunks []wavstrip.Chunk) string {
	if len(chunks) == 0 {
		return "nothing"
	}

	names := make([]string, len(chunks))
	for i, c := range chunks {
		names[i] = c.String()
	}

	return strings.Join(names, ", ")
}
