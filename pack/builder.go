// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pack

import (
	"bytes"
	"io"
	"sync"

	"github.com/pierrec/lz4"
)

// NewBuilder creates a new Builder. Do not fill the Index in
// the header, it will be overwritten anyway.
func NewBuilder(header Header) *Builder {
	header.Index = nil
	return &Builder{
		header: header,
		names:  map[string]bool{},
	}
}

type entry struct {
	name       string
	size       int64
	compressed []byte
}

// Builder is the way to create an archive. Archives are versioned and
// cannot be appended to. Entries are compressed as they are added and
// bundled together by WriteTo.
type Builder struct {
	header Header

	mutex   sync.Mutex
	names   map[string]bool
	entries []entry
}

// Add compresses everything read from r as the entry name.
// Is safe to use concurrently in different goroutines.
func (b *Builder) Add(name string, r io.Reader) error {
	var compressed bytes.Buffer
	zw := lz4.NewWriter(&compressed)
	size, err := io.Copy(zw, r)
	if err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.names[name] {
		return ErrDuplicate
	}
	b.names[name] = true
	b.entries = append(b.entries, entry{
		name:       name,
		size:       size,
		compressed: compressed.Bytes(),
	})
	return nil
}

// Len returns the number of entries added.
func (b *Builder) Len() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.entries)
}

// WriteTo writes the archive of every entry added so far.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	header := b.header
	var offset int64
	for _, e := range b.entries {
		header.Index = append(header.Index, IndexEntry{
			Name:           e.name,
			Offset:         offset,
			Size:           e.size,
			CompressedSize: int64(len(e.compressed)),
		})
		offset += int64(len(e.compressed))
	}

	rawHeader, err := gobEncode(header)
	if err != nil {
		return 0, err
	}

	var written int64
	write := func(p []byte) error {
		n, err := w.Write(p)
		written += int64(n)
		return err
	}
	if err := write([]byte(Magic)); err != nil {
		return written, err
	}
	if err := write(int64ToBinary(int64(len(rawHeader)))); err != nil {
		return written, err
	}
	if err := write(rawHeader); err != nil {
		return written, err
	}
	for _, e := range b.entries {
		if err := write(e.compressed); err != nil {
			return written, err
		}
	}
	return written, nil
}
