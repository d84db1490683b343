// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pack_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/devblok/graphics/pack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testFiles = map[string]string{
	"shaders/tri-vert.spv": strings.Repeat("\x03\x02\x23\x07", 64),
	"shaders/tri-frag.spv": strings.Repeat("\x03\x02\x23\x07\x00", 33),
	"README":               "shaders for the triangle sample",
	"empty":                "",
}

func buildArchive(t *testing.T) []byte {
	t.Helper()
	b := pack.NewBuilder(pack.Header{
		Author:      "devblok",
		DateCreated: 1546300800,
		Version:     1,
	})

	var wg sync.WaitGroup
	for name, contents := range testFiles {
		wg.Add(1)
		go func(name, contents string) {
			defer wg.Done()
			assert.NoError(t, b.Add(name, strings.NewReader(contents)))
		}(name, contents)
	}
	wg.Wait()
	require.Equal(t, len(testFiles), b.Len())

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	data := buildArchive(t)
	require.True(t, bytes.HasPrefix(data, []byte(pack.Magic)))

	ar, err := pack.Open(bytes.NewReader(data))
	require.NoError(t, err)
	defer ar.Close()

	header := ar.Header()
	assert.Equal(t, "devblok", header.Author)
	assert.EqualValues(t, 1, header.Version)
	assert.ElementsMatch(t, keys(testFiles), ar.Names())

	for name, contents := range testFiles {
		got, err := ar.ReadAll(name)
		require.NoError(t, err, name)
		assert.Equal(t, contents, string(got), name)
	}
}

func TestEntryReader(t *testing.T) {
	ar, err := pack.Open(bytes.NewReader(buildArchive(t)))
	require.NoError(t, err)

	r, err := ar.Open("README")
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, testFiles["README"], string(got))
}

func TestNotFound(t *testing.T) {
	ar, err := pack.Open(bytes.NewReader(buildArchive(t)))
	require.NoError(t, err)

	_, err = ar.ReadAll("missing")
	assert.Equal(t, pack.ErrNotFound, err)
	_, err = ar.Open("missing")
	assert.Equal(t, pack.ErrNotFound, err)
}

func TestDuplicateEntry(t *testing.T) {
	b := pack.NewBuilder(pack.Header{})
	require.NoError(t, b.Add("a", strings.NewReader("1")))
	assert.Equal(t, pack.ErrDuplicate, b.Add("a", strings.NewReader("2")))
	assert.Equal(t, 1, b.Len())
}

func TestFileFormat(t *testing.T) {
	cases := map[string][]byte{
		"empty":       nil,
		"short":       []byte("KAR"),
		"bad magic":   []byte("ZIP\x00\x10\x00\x00\x00\x00\x00\x00\x00"),
		"zero header": []byte("KAR\x00\x00\x00\x00\x00\x00\x00\x00\x00"),
		"truncated":   []byte("KAR\x00\xff\x00\x00\x00\x00\x00\x00\x00abc"),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pack.Open(bytes.NewReader(data))
			assert.Equal(t, pack.ErrFileFormat, err)
		})
	}

	valid := buildArchive(t)
	garbled := append([]byte{}, valid[:pack.MagicLength+pack.HeaderSizeNumberLength]...)
	garbled = append(garbled, bytes.Repeat([]byte{0xfe}, len(valid)-len(garbled))...)
	_, err := pack.Open(bytes.NewReader(garbled))
	assert.Equal(t, pack.ErrFileFormat, err)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaders.kar")
	require.NoError(t, os.WriteFile(path, buildArchive(t), 0o644))

	ar, err := pack.OpenFile(path)
	require.NoError(t, err)
	got, err := ar.ReadAll("shaders/tri-vert.spv")
	require.NoError(t, err)
	assert.Equal(t, testFiles["shaders/tri-vert.spv"], string(got))
	assert.NoError(t, ar.Close())
	assert.NoError(t, ar.Close())

	_, err = pack.OpenFile(filepath.Join(t.TempDir(), "missing.kar"))
	assert.Error(t, err)
}

func keys(m map[string]string) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
