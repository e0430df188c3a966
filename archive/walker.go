// Package archive reads recipe bundles: zip archives holding recipe files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/h2non/filetype"
)

// WalkFunc is called for every matching file in archive with its name inside
// archive and its content. If an error is returned, processing stops.
type WalkFunc func(name string, data []byte) error

// IsArchive checks file signature and reports whether path is a zip archive.
func IsArchive(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs no more than this to recognize any of its types
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

// Walk calls walkFn for every file in archive which name ends with one of
// exts (case insensitive), in archive order. Entries with absolute paths or
// ".." components make Walk fail before anything is visited.
func Walk(archive string, exts []string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !isSafePath(f.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", f.Name)
		}
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !hasExt(f.Name, exts) {
			continue
		}
		data, err := readFile(f)
		if err != nil {
			return fmt.Errorf("zip entry %q: %w", f.Name, err)
		}
		if err := walkFn(f.Name, data); err != nil {
			return err
		}
	}
	return nil
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
