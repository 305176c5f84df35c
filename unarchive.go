// unarchive.go
package nursepy

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4"
	"github.com/pkg/errors"
)

// openData opens a data file for reading, transparently unwrapping .zip, .gz
// and .lz4 archives. For zip archives the largest member is read, which is
// the data file in the archives people actually upload.
func openData(filePath string) (io.ReadCloser, error) {
	switch filepath.Ext(filePath) {
	case ".zip":
		return openZipData(filePath)
	case ".gz":
		return openGzipData(filePath)
	case ".lz4":
		return openLZ4Data(filePath)
	}
	return os.Open(filePath)
}

func openZipData(filePath string) (io.ReadCloser, error) {
	r, err := zip.OpenReader(filePath)
	if err != nil {
		return nil, err
	}

	var largestFile *zip.File
	var largestSize uint64
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.UncompressedSize64 > largestSize {
			largestFile = f
			largestSize = f.UncompressedSize64
		}
	}
	if largestFile == nil {
		r.Close()
		return nil, errors.Errorf("zip archive %s holds no files", filePath)
	}

	rc, err := largestFile.Open()
	if err != nil {
		r.Close()
		return nil, err
	}
	return &chainedCloser{Reader: rc, closers: []io.Closer{rc, r}}, nil
}

func openGzipData(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &chainedCloser{Reader: gr, closers: []io.Closer{gr, file}}, nil
}

func openLZ4Data(filePath string) (io.ReadCloser, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	return &chainedCloser{Reader: lz4.NewReader(file), closers: []io.Closer{file}}, nil
}

// chainedCloser closes every underlying resource of a wrapped reader.
type chainedCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *chainedCloser) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
