package convert

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// sink receives generated results. Names are relative and use OS separators.
type sink interface {
	// Put stores data under name and returns location of the stored result.
	Put(name string, data []byte) (string, error)
	Close() error
}

var errOutputExists = errors.New("output already exists")

// dirSink writes every result as a separate file under destination directory.
type dirSink struct {
	dst       string
	overwrite bool
	log       *zap.Logger
}

func newDirSink(dst string, overwrite bool, log *zap.Logger) *dirSink {
	return &dirSink{dst: dst, overwrite: overwrite, log: log}
}

func (s *dirSink) Put(name string, data []byte) (string, error) {
	outputName := filepath.Join(s.dst, name)

	if _, err := os.Stat(outputName); err == nil {
		if !s.overwrite {
			return outputName, fmt.Errorf("%w: %s", errOutputExists, outputName)
		}
		s.log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return outputName, err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return outputName, fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return outputName, fmt.Errorf("unable to write output: %w", err)
	}
	return outputName, nil
}

func (s *dirSink) Close() error {
	return nil
}

// bundleSink collects all results into a single zip archive.
type bundleSink struct {
	mu     sync.Mutex
	path   string
	tmp    string
	out    *os.File
	arc    *zip.Writer
	names  map[string]struct{}
	fixZip bool
	log    *zap.Logger
}

func newBundleSink(path string, overwrite, fixZip bool, log *zap.Logger) (*bundleSink, error) {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return nil, fmt.Errorf("%w: %s", errOutputExists, path)
		}
		log.Warn("Overwriting existing archive", zap.String("file", path))
	} else if !os.IsNotExist(err) {
		return nil, err
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	s := &bundleSink{path: path, names: make(map[string]struct{}), fixZip: fixZip, log: log}

	var err error
	if fixZip {
		// archive is rewritten on Close, collect entries next to it first
		s.out, err = os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
		if err == nil {
			s.tmp = s.out.Name()
		}
	} else {
		s.out, err = os.Create(path)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to create archive: %w", err)
	}
	s.arc = zip.NewWriter(s.out)
	return s, nil
}

func (s *bundleSink) Put(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = filepath.ToSlash(name)
	if _, ok := s.names[name]; ok {
		return name, fmt.Errorf("%w in archive %s: %s", errOutputExists, s.path, name)
	}

	w, err := s.arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: time.Now()})
	if err != nil {
		return name, fmt.Errorf("unable to add %s to archive: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return name, fmt.Errorf("unable to write %s to archive: %w", name, err)
	}
	s.names[name] = struct{}{}
	return name, nil
}

func (s *bundleSink) Close() (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tmp != "" {
		defer func() {
			err = multierr.Append(err, os.Remove(s.tmp))
		}()
	}
	if err := multierr.Combine(s.arc.Close(), s.out.Close()); err != nil || s.tmp == "" {
		return err
	}
	return copyZipWithoutDataDescriptors(s.tmp, s.path)
}

// copyZipWithoutDataDescriptors rewrites archive so every entry carries sizes
// in the local header. Some readers do not support data descriptors.
func copyZipWithoutDataDescriptors(from, to string) (err error) {
	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer func() {
		err = multierr.Append(err, out.Close())
	}()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	for _, file := range r.File {
		file.Flags &= ^fixzip.FlagDataDescriptor
		if err := w.CopyFile(file); err != nil {
			return multierr.Append(fmt.Errorf("unable to write target file (%s): %w", to, err), w.Close())
		}
	}
	return w.Close()
}
