package store

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Standard source file names under the data directory.
const (
	titlesFile     = "title.basics.tsv"
	peopleFile     = "name.basics.tsv"
	principalsFile = "title.principals.tsv"
	crewsFile      = "title.crew.tsv"
	ratingsFile    = "title.ratings.tsv"
)

// Opener yields one source stream. Each source is opened and read exactly
// once per load.
type Opener func() (io.ReadCloser, error)

// Sources provides one opener per tabular source.
type Sources struct {
	Titles     Opener
	People     Opener
	Principals Opener
	Crews      Opener
	Ratings    Opener
}

// FileSources returns Sources reading the standard file names under dir.
// A .gz variant of a file takes precedence when present and is decompressed
// transparently.
func FileSources(dir string) Sources {
	open := func(name string) Opener {
		return func() (io.ReadCloser, error) {
			return openDataFile(filepath.Join(dir, name))
		}
	}

	return Sources{
		Titles:     open(titlesFile),
		People:     open(peopleFile),
		Principals: open(principalsFile),
		Crews:      open(crewsFile),
		Ratings:    open(ratingsFile),
	}
}

func openDataFile(path string) (io.ReadCloser, error) {
	if _, err := os.Stat(path + ".gz"); err == nil {
		path += ".gz"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close() //nolint:errcheck // open failed, nothing more to do with the file.

		return nil, err
	}

	return &gzipReadCloser{Reader: zr, file: f}, nil
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	err := g.Reader.Close()

	if cerr := g.file.Close(); err == nil {
		err = cerr
	}

	return err
}
