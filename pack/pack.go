// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package pack is an api for an lz4 backed archive format, used to ship
// shader binaries and sources. The archive itself is not compressed,
// every entry is compressed on its own, so the index tells where every
// entry is before anything is read and an entry can be decompressed
// straight from its place. Archives are meant to be memory mapped and
// can be read from concurrently.
//
// Layout: the magic "KAR\x00", the size of the header as a little endian
// int64, the gob encoded Header, then the compressed entries back to back.
// Entry offsets are relative to the end of the header.
package pack

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
)

// package errors
var (
	ErrFileFormat = errors.New("corrupted or not a kar archive")
	ErrNotFound   = errors.New("no such entry in archive")
	ErrDuplicate  = errors.New("entry already added")
)

// Magic starts every archive.
const Magic = "KAR\x00"

// Sizes relevant to the header of file
const (
	MagicLength            = 4
	HeaderSizeNumberLength = 8
	prefixLength           = MagicLength + HeaderSizeNumberLength
)

// IndexEntry is info for one file in the file index.
type IndexEntry struct {
	Name           string
	Offset         int64
	Size           int64
	CompressedSize int64
}

// Header is the file header for kar files.
type Header struct {
	Author      string
	DateCreated int64
	Version     int64
	Index       []IndexEntry
}

func int64ToBinary(num int64) []byte {
	b := make([]byte, HeaderSizeNumberLength)
	binary.LittleEndian.PutUint64(b, uint64(num))
	return b
}

func binaryToInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

func gobEncode(data interface{}) ([]byte, error) {
	var encoded bytes.Buffer
	if err := gob.NewEncoder(&encoded).Encode(data); err != nil {
		return nil, err
	}
	return encoded.Bytes(), nil
}

func gobDecode(obj interface{}, b []byte) error {
	return gob.NewDecoder(bytes.NewReader(b)).Decode(obj)
}
