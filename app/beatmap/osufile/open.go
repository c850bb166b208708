package osufile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itchio/lzma"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type Compression int

const (
	None Compression = iota
	Gzip
	Zstd
	Lzma
)

var compressionExt = map[string]Compression{
	".gz":   Gzip,
	".zst":  Zstd,
	".lzma": Lzma,
}

// Format splits path into its compression and the extension of the content, e.g. "map.osu.gz" gives Gzip and ".osu".
func Format(path string) (Compression, string) {
	ext := strings.ToLower(filepath.Ext(path))

	c, ok := compressionExt[ext]
	if !ok {
		return None, ext
	}

	return c, strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
}

// IsBeatmapFile reports whether path holds something Load can read.
func IsBeatmapFile(path string) bool {
	_, ext := Format(path)

	switch ext {
	case ".osu", ".yaml", ".yml":
		return true
	}

	return false
}

type readCloser struct {
	io.Reader
	closers []func() error
}

func (r *readCloser) Close() error {
	var first error

	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// Open returns the decompressed content of path.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	compression, _ := Format(path)

	rc := &readCloser{Reader: file, closers: []func() error{file.Close}}

	switch compression {
	case Gzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		rc.Reader = gz
		rc.closers = append(rc.closers, gz.Close)
	case Zstd:
		dec, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		rc.Reader = dec
		rc.closers = append(rc.closers, func() error {
			dec.Close()
			return nil
		})
	case Lzma:
		lz := lzma.NewReader(file)

		rc.Reader = lz
		rc.closers = append(rc.closers, lz.Close)
	}

	return rc, nil
}

// Load reads an .osu file or a YAML fixture, optionally compressed.
func Load(path string) (*File, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}

	defer rc.Close()

	var f *File

	switch _, ext := Format(path); ext {
	case ".yaml", ".yml":
		f, err = DecodeFixture(rc)
	default:
		f, err = Decode(rc)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}
