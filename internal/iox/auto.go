package iox

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadAuto reads the whole file into memory, transparently decompressing
// .gz inputs. The file handle is released before returning.
func ReadAuto(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if isGzip(path) {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	}
	return io.ReadAll(r)
}

// OpenAuto opens a file for streaming reads, with .gz support.
func OpenAuto(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !isGzip(path) {
		return f, nil
	}
	gr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{Reader: gr, closers: []io.Closer{gr, f}}, nil
}

func isGzip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gz")
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c.Close(); err == nil && e != nil {
			err = e
		}
	}
	return err
}
