// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pack

import (
	"io"

	"github.com/pierrec/lz4"
	"golang.org/x/exp/mmap"
)

// Open opens the archive read from r. It checks that r actually holds
// an archive and returns ErrFileFormat when it does not.
func Open(r io.ReaderAt) (*Archive, error) {
	prefix := make([]byte, prefixLength)
	if n, err := r.ReadAt(prefix, 0); n < prefixLength {
		if err == nil || err == io.EOF {
			err = ErrFileFormat
		}
		return nil, err
	}
	if string(prefix[:MagicLength]) != Magic {
		return nil, ErrFileFormat
	}

	headerSize := binaryToInt64(prefix[MagicLength:])
	if headerSize <= 0 {
		return nil, ErrFileFormat
	}
	headerBytes := make([]byte, headerSize)
	if n, err := r.ReadAt(headerBytes, prefixLength); int64(n) < headerSize {
		if err == nil || err == io.EOF {
			err = ErrFileFormat
		}
		return nil, err
	}

	ar := &Archive{
		reader: r,
		base:   prefixLength + headerSize,
		index:  map[string]IndexEntry{},
	}
	if err := gobDecode(&ar.header, headerBytes); err != nil {
		return nil, ErrFileFormat
	}
	for _, e := range ar.header.Index {
		if e.Offset < 0 || e.CompressedSize < 0 || e.Size < 0 {
			return nil, ErrFileFormat
		}
		ar.index[e.Name] = e
	}
	return ar, nil
}

// OpenFile memory maps the archive at path.
func OpenFile(path string) (*Archive, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	ar, err := Open(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	ar.closer = r
	return ar, nil
}

// Archive provides concurrent io for a kar file, and can provide
// an io.Reader for each file separately to perform actions on.
type Archive struct {
	reader io.ReaderAt
	closer io.Closer
	base   int64
	header Header
	index  map[string]IndexEntry
}

// Header returns the archive header, index included.
func (a *Archive) Header() Header {
	return a.header
}

// Names returns the entry names in archive order.
func (a *Archive) Names() []string {
	names := make([]string, len(a.header.Index))
	for i, e := range a.header.Index {
		names[i] = e.Name
	}
	return names
}

// Open returns a Reader of the decompressed contents of the entry name.
func (a *Archive) Open(name string) (io.Reader, error) {
	e, ok := a.index[name]
	if !ok {
		return nil, ErrNotFound
	}
	section := io.NewSectionReader(a.reader, a.base+e.Offset, e.CompressedSize)
	return io.LimitReader(lz4.NewReader(section), e.Size), nil
}

// ReadAll returns the entire contents of a file with a given name
func (a *Archive) ReadAll(name string) ([]byte, error) {
	r, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) != a.index[name].Size {
		return nil, ErrFileFormat
	}
	return data, nil
}

// Close releases the mapping of an archive opened with OpenFile.
func (a *Archive) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}
