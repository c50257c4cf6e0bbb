package cnfio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Compressed extensions recognized by Open. Detection is by extension
// stripping, so "instance.cnf.gz" is a gzip-wrapped CNF.
const (
	extGzip  = ".gz"
	extBzip2 = ".bz2"
	extXz    = ".xz"
	extLzma  = ".lzma"
)

// Open opens path for lexing, stacking a decompressor when the file
// extension is one of .gz, .bz2, .xz or .lzma. Any other extension is
// read as plain text.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Line: 0, Msg: "open failed", Err: err}
	}

	stream, closer, err := wrapDecompressor(path, file)
	if err != nil {
		file.Close()

		return nil, &ParseError{Path: path, Line: 0, Msg: "decompressor init failed", Err: err}
	}

	reader := NewReader(path, stream)
	if closer != nil {
		reader.closers = append(reader.closers, closer)
	}
	reader.closers = append(reader.closers, file)

	return reader, nil
}

// wrapDecompressor selects a decompressor by extension. The returned
// closer is nil for formats whose readers hold no resources of their
// own (xz, lzma) and for plain files.
func wrapDecompressor(path string, file *os.File) (io.Reader, io.Closer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extGzip:
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}

		return gz, gz, nil

	case extBzip2:
		bz, err := bzip2.NewReader(file, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("bzip2: %w", err)
		}

		return bz, bz, nil

	case extXz:
		xr, err := xz.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("xz: %w", err)
		}

		return xr, nil, nil

	case extLzma:
		lr, err := lzma.NewReader(file)
		if err != nil {
			return nil, nil, fmt.Errorf("lzma: %w", err)
		}

		return lr, nil, nil
	}

	return file, nil, nil
}
