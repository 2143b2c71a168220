// huffpack compresses and expands files with the huffpack format.
//
// Usage:
//
//	huffpack compress [--verify] [--dump] [INPUT [OUTPUT]]
//	huffpack expand [INPUT [OUTPUT]]
//	huffpack stat [INPUT]
//
// An INPUT or OUTPUT of "-", or one that is omitted, means standard input
// or standard output.
package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/klauspost/compress/huff0"
	"github.com/spf13/pflag"
	"github.com/zeebo/blake3"

	"github.com/chronos-tachyon/huffpack"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	verify   bool
	dump     bool
	logLevel string
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("huffpack", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVar(&opts.verify, "verify", false, "compress only: expand the artifact and compare BLAKE3 digests")
	flagSet.BoolVar(&opts.dump, "dump", false, "compress only: write the frequency and code tables to stderr")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q", opts.logLevel)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	positional := flagSet.Args()
	if len(positional) == 0 {
		printHelp(stderr, flagSet)
		return errors.New("missing command")
	}
	command, paths := positional[0], positional[1:]

	maxPaths := 2
	if command == "stat" {
		maxPaths = 1
	}
	if len(paths) > maxPaths {
		return fmt.Errorf("%s: unexpected argument: %s", command, paths[maxPaths])
	}
	if command != "compress" && (opts.verify || opts.dump) {
		return fmt.Errorf("%s: --verify and --dump only apply to compress", command)
	}
	inputPath, outputPath := pathAt(paths, 0), pathAt(paths, 1)

	switch command {
	case "compress":
		return runCompress(logger, opts, stdin, stdout, stderr, inputPath, outputPath)
	case "expand":
		return runExpand(logger, stdin, stdout, inputPath, outputPath)
	case "stat":
		return runStat(stdin, stdout, inputPath)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runCompress(logger *slog.Logger, opts options, stdin io.Reader, stdout io.Writer, stderr io.Writer, inputPath string, outputPath string) error {
	if !isStdio(inputPath) && !isStdio(outputPath) && !opts.verify && !opts.dump {
		stats, err := huffpack.CompressFile(outputPath, inputPath)
		if err != nil {
			return err
		}
		logCompressed(logger, inputPath, stats)
		return nil
	}

	data, err := readInput(stdin, inputPath)
	if err != nil {
		return err
	}

	artifact, stats, err := huffpack.CompressStats(data)
	if err != nil {
		return err
	}
	logCompressed(logger, inputPath, stats)

	if opts.dump {
		if err := dumpTables(stderr, data); err != nil {
			return err
		}
	}

	if opts.verify {
		if err := verifyRoundTrip(logger, data, artifact); err != nil {
			return err
		}
	}

	return writeOutput(stdout, outputPath, artifact)
}

func logCompressed(logger *slog.Logger, inputPath string, stats huffpack.Stats) {
	logger.Info("compressed",
		"input", displayPath(inputPath),
		"input_bytes", stats.InputBytes,
		"symbols", stats.Symbols,
		"trie_bits", stats.TrieBits,
		"payload_bits", stats.PayloadBits,
		"output_bytes", stats.OutputBytes,
	)
}

func runExpand(logger *slog.Logger, stdin io.Reader, stdout io.Writer, inputPath string, outputPath string) error {
	if !isStdio(inputPath) && !isStdio(outputPath) {
		n, err := huffpack.ExpandFile(outputPath, inputPath)
		if err != nil {
			return fmt.Errorf("%s: %w", inputPath, err)
		}
		logger.Info("expanded", "input", inputPath, "output", outputPath, "output_bytes", n)
		return nil
	}

	r := stdin
	if !isStdio(inputPath) {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	// A named output is only created once the artifact has decoded.
	w := stdout
	var buf bytes.Buffer
	if !isStdio(outputPath) {
		w = &buf
	}

	n, err := huffpack.ExpandTo(w, r)
	if err != nil {
		return fmt.Errorf("%s: %w", displayPath(inputPath), err)
	}
	logger.Info("expanded", "input", displayPath(inputPath), "output_bytes", n)

	if !isStdio(outputPath) {
		return writeOutput(stdout, outputPath, buf.Bytes())
	}
	return nil
}

func runStat(stdin io.Reader, stdout io.Writer, inputPath string) error {
	data, err := readInput(stdin, inputPath)
	if err != nil {
		return err
	}

	ft := huffpack.Analyze(data)
	stats, err := huffpack.Measure(ft)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "input_bytes\t%d\n", stats.InputBytes)
	fmt.Fprintf(&buf, "symbols\t%d\n", stats.Symbols)
	fmt.Fprintf(&buf, "entropy_bits_per_symbol\t%.4f\n", ft.Entropy())
	fmt.Fprintf(&buf, "trie_bits\t%d\n", stats.TrieBits)
	fmt.Fprintf(&buf, "payload_bits\t%d\n", stats.PayloadBits)
	fmt.Fprintf(&buf, "output_bytes\t%d\n", stats.OutputBytes)
	fmt.Fprintf(&buf, "ratio\t%.4f\n", stats.Ratio())
	fmt.Fprintf(&buf, "huff0_1x_bytes\t%s\n", huff0Size(data))
	_, err = buf.WriteTo(stdout)
	return err
}

// huff0Size reports what a table-driven Huffman coder achieves on the same
// block, as a point of comparison.
func huff0Size(data []byte) string {
	if len(data) == 0 || len(data) > huff0.BlockSizeMax {
		return "n/a"
	}
	var scratch huff0.Scratch
	out, _, err := huff0.Compress1X(data, &scratch)
	switch {
	case errors.Is(err, huff0.ErrIncompressible):
		return "incompressible"
	case errors.Is(err, huff0.ErrUseRLE):
		return "rle"
	case err != nil:
		return "n/a"
	}
	return fmt.Sprint(len(out))
}

func dumpTables(w io.Writer, data []byte) error {
	ft := huffpack.Analyze(data)
	if _, err := ft.Dump(w); err != nil {
		return err
	}
	if ft.Len() == 0 {
		return nil
	}
	t, err := huffpack.BuildTrie(ft)
	if err != nil {
		return err
	}
	ct := huffpack.NewCodeTable(t)
	_, err = ct.Dump(w)
	return err
}

func verifyRoundTrip(logger *slog.Logger, data []byte, artifact []byte) error {
	expanded, err := huffpack.Expand(artifact)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	want := blake3.Sum256(data)
	got := blake3.Sum256(expanded)
	logger.Debug("verify",
		"input_blake3", hex.EncodeToString(want[:]),
		"expanded_blake3", hex.EncodeToString(got[:]),
	)
	if want != got {
		return fmt.Errorf("verify: digest mismatch: input %x, expanded %x", want, got)
	}
	return nil
}

func pathAt(paths []string, i int) string {
	if i < len(paths) {
		return paths[i]
	}
	return ""
}

func isStdio(path string) bool {
	return path == "" || path == "-"
}

func displayPath(path string) string {
	if isStdio(path) {
		return "<stdin>"
	}
	return path
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if isStdio(path) {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if isStdio(path) {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o666)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `huffpack: Huffman compression for files and pipes.

Usage:
  huffpack compress [flags] [INPUT [OUTPUT]]
  huffpack expand [flags] [INPUT [OUTPUT]]
  huffpack stat [flags] [INPUT]

INPUT and OUTPUT default to standard input and standard output.

Flags:
%s`, flagSet.FlagUsages())
}
