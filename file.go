package huffpack

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// CompressTo reads all of r, compresses it, and writes the artifact to w.
func CompressTo(w io.Writer, r io.Reader) (Stats, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Stats{}, fmt.Errorf("huffpack: read input: %w", err)
	}
	out, stats, err := CompressStats(data)
	if err != nil {
		return stats, err
	}
	if _, err := w.Write(out); err != nil {
		return stats, fmt.Errorf("huffpack: write artifact: %w", err)
	}
	return stats, nil
}

// ExpandTo reads a whole artifact from r and writes the expanded bytes to w.
// Nothing is written to w unless the artifact decodes successfully.
func ExpandTo(w io.Writer, r io.Reader) (int64, error) {
	artifact, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("huffpack: read artifact: %w", err)
	}
	data, err := Expand(artifact)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("huffpack: write output: %w", err)
	}
	return int64(n), nil
}

// CompressFile compresses the file at src into a new file at dst.
func CompressFile(dst string, src string) (Stats, error) {
	var stats Stats
	err := withFiles(dst, src, func(w io.Writer, r io.Reader) error {
		var err error
		stats, err = CompressTo(w, r)
		return err
	})
	return stats, err
}

// ExpandFile expands the artifact at src into a new file at dst.  If the
// artifact is invalid, dst is removed rather than left holding partial data.
func ExpandFile(dst string, src string) (int64, error) {
	var n int64
	err := withFiles(dst, src, func(w io.Writer, r io.Reader) error {
		var err error
		n, err = ExpandTo(w, r)
		return err
	})
	return n, err
}

// withFiles opens src and creates dst, runs fn, and closes both on every
// path.  On failure dst is removed.  dst must not name the same file as src,
// since creating it would truncate the input before it is read.
func withFiles(dst string, src string, fn func(io.Writer, io.Reader) error) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := checkDistinct(dst, in); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(dst))
		}
	}()

	return fn(out, in)
}

func checkDistinct(dst string, in *os.File) error {
	inInfo, err := in.Stat()
	if err != nil {
		return err
	}
	outInfo, err := os.Stat(dst)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("%w: %s", ErrSameFile, dst)
	}
	return nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
