package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Sink persists dumped images.
type Sink interface {
	// Save stores data as folder/fileName, replacing any existing file.
	Save(folder, fileName string, data []byte) error
}

// SaveError indicates an image could not be written.
type SaveError struct {
	Folder   string
	FileName string
	Err      error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", filepath.Join(e.Folder, e.FileName), e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// DirSink writes files to the local filesystem. Writes are transacted: data
// goes to a temporary file in the target folder, which is synced and then
// renamed over the target, so a failed save never leaves a partial image.
type DirSink struct {
	// Perm is the mode of created folders; 0755 when zero
	Perm os.FileMode
}

// NewDirSink returns a DirSink with default permissions.
func NewDirSink() *DirSink {
	return &DirSink{Perm: 0o755}
}

// Save implements Sink.
func (s *DirSink) Save(folder, fileName string, data []byte) error {
	if fileName == "" || filepath.Base(fileName) != fileName {
		return &SaveError{Folder: folder, FileName: fileName, Err: errors.New("invalid file name")}
	}
	if folder == "" {
		folder = "."
	}

	perm := s.Perm
	if perm == 0 {
		perm = 0o755
	}

	if err := s.save(folder, fileName, data, perm); err != nil {
		return &SaveError{Folder: folder, FileName: fileName, Err: err}
	}
	return nil
}

func (s *DirSink) save(folder, fileName string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(folder, perm); err != nil {
		return errors.Wrap(err, "create folder")
	}

	tmp, err := os.CreateTemp(folder, "."+fileName+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrap(err, "write")
	}
	if err := tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return errors.Wrap(err, "chmod")
	}
	if err := os.Rename(tmpName, filepath.Join(folder, fileName)); err != nil {
		return errors.Wrap(err, "rename")
	}

	committed = true
	return nil
}

// Discard is a Sink that drops every image, for dry runs.
var Discard Sink = discard{}

type discard struct{}

func (discard) Save(string, string, []byte) error { return nil }
