// Package persist writes a finished deck to its staging path and duplicates it to the final
// destination.
package persist

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrSameFile is returned when the source and destination of a copy are the same file.
var ErrSameFile = errors.New("source and destination are the same file")

// Result describes a file written to its destination.
type Result struct {
	Path   string
	Bytes  int64
	SHA256 string // hex digest of the bytes written to Path
}

// Save writes data to stagingPath, then copies the staged file to finalPath. Parent directories
// are created as needed. There is no retry and no cleanup of a partial copy.
func Save(data []byte, stagingPath, finalPath string) (Result, error) {
	if err := os.MkdirAll(filepath.Dir(stagingPath), 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create staging directory: %w", err)
	}
	if err := os.WriteFile(stagingPath, data, 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write staged file: %w", err)
	}
	return CopyFile(stagingPath, finalPath)
}

// CopyFile duplicates src to dst, keeping the source's permission bits and modification time.
// The digest is computed while copying. Copying a file onto itself fails with ErrSameFile and
// leaves the file untouched.
func CopyFile(src, dst string) (Result, error) {
	in, err := os.Open(src)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat %s: %w", src, err)
	}

	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(info, dstInfo) {
		return Result{}, fmt.Errorf("%w: %s and %s", ErrSameFile, src, dst)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return Result{}, fmt.Errorf("failed to create destination directory: %w", err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return Result{}, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(out, h), in)
	if err != nil {
		out.Close()
		return Result{}, fmt.Errorf("failed to copy to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to close %s: %w", dst, err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return Result{}, fmt.Errorf("failed to set mode of %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return Result{}, fmt.Errorf("failed to set times of %s: %w", dst, err)
	}

	return Result{Path: dst, Bytes: n, SHA256: hex.EncodeToString(h.Sum(nil))}, nil
}
