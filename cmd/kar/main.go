// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command kar builds, lists and extracts kar archives.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/devblok/graphics/pack"
	log "github.com/sirupsen/logrus"
)

func currentUserName() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

var (
	author   = flag.String("author", currentUserName(), "Set the author of the package when compressing")
	version  = flag.Int64("version", 1, "Archive version number to create it with")
	extract  = flag.String("e", "", "Extract the archive given into the destination folder")
	compress = flag.String("c", "", "Compress the given file/folder")
	list     = flag.String("l", "", "List the entries of the archive given")
	dst      = flag.String("f", "out.kar", "Destination file, or folder when extracting")
	silent   = flag.Bool("s", false, "Silent")
)

func main() {
	flag.Parse()
	if *silent {
		log.SetLevel(log.WarnLevel)
	}

	ops := 0
	for _, op := range []string{*extract, *compress, *list} {
		if op != "" {
			ops++
		}
	}
	if ops > 1 {
		log.Fatal(errors.New("only one operation at a time"))
	}

	var err error
	switch {
	case *compress != "":
		err = compressFiles(*compress, *dst)
	case *extract != "":
		err = extractFiles(*extract, *dst)
	case *list != "":
		err = listFiles(*list)
	default:
		flag.PrintDefaults()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func compressFiles(root, dstFile string) error {
	if _, err := os.Stat(dstFile); err == nil {
		return errors.New("destination file exists, will not overwrite")
	}

	var filesToCompress []string
	if err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		filesToCompress = append(filesToCompress, path)
		return nil
	}); err != nil {
		return err
	}

	builder := pack.NewBuilder(pack.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})
	for _, ftc := range filesToCompress {
		name, err := entryName(root, ftc)
		if err != nil {
			return err
		}
		if err := addFile(builder, name, ftc); err != nil {
			return err
		}
		log.WithField("entry", name).Info("added")
	}

	out, err := os.Create(dstFile)
	if err != nil {
		return err
	}
	n, err := builder.WriteTo(out)
	if err != nil {
		out.Close()
		return err
	}
	log.WithFields(log.Fields{"file": dstFile, "bytes": n, "entries": builder.Len()}).Info("archive written")
	return out.Close()
}

// entryName is the slash separated path of file under root,
// or its base name when root is the file itself.
func entryName(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", err
	}
	if rel == "." {
		rel = filepath.Base(file)
	}
	return filepath.ToSlash(rel), nil
}

func addFile(builder *pack.Builder, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return builder.Add(name, f)
}

func listFiles(archive string) error {
	ar, err := pack.OpenFile(archive)
	if err != nil {
		return err
	}
	defer ar.Close()

	header := ar.Header()
	fmt.Printf("author: %s\nversion: %d\ncreated: %s\n", header.Author, header.Version,
		time.Unix(header.DateCreated, 0).Format(time.RFC3339))
	for _, e := range header.Index {
		fmt.Printf("%10d %10d %s\n", e.Size, e.CompressedSize, e.Name)
	}
	return nil
}

func extractFiles(archive, folder string) error {
	ar, err := pack.OpenFile(archive)
	if err != nil {
		return err
	}
	defer ar.Close()

	for _, name := range ar.Names() {
		target := filepath.Join(folder, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		r, err := ar.Open(name)
		if err != nil {
			return err
		}
		f, err := os.Create(target)
		if err != nil {
			return err
		}
		if _, err := io.Copy(f, r); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		log.WithField("entry", name).Info("extracted")
	}
	return nil
}
