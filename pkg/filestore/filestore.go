package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DateLayout = "20060102"

	dirPerm  = 0o755
	filePerm = 0o644
)

var (
	ErrBatchMismatch = errors.New("names and streams count mismatch")
	ErrInvalidName   = errors.New("invalid file name")
)

// Store keeps files under <root>/<YYYYMMDD>/<name>, the date taken in loc.
type Store struct {
	root string
	loc  *time.Location
}

func New(root string, loc *time.Location) (*Store, error) {
	if root == "" {
		return nil, errors.New("storage root is empty")
	}

	if loc == nil {
		loc = time.Local
	}

	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &Store{root: root, loc: loc}, nil
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) Dir(at time.Time) string {
	return filepath.Join(s.root, at.In(s.loc).Format(DateLayout))
}

func (s *Store) Path(at time.Time, name string) string {
	return filepath.Join(s.Dir(at), name)
}

// WriteBatch writes streams[i] to names[i] inside the date directory of at.
// Files written before a failure are left in place.
func (s *Store) WriteBatch(at time.Time, names []string, streams []io.Reader) error {
	if len(names) != len(streams) {
		return fmt.Errorf("%w: %d names, %d streams", ErrBatchMismatch, len(names), len(streams))
	}

	dir := s.Dir(at)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	for i, name := range names {
		if err := s.write(dir, name, streams[i]); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) write(dir, name string, r io.Reader) (err error) {
	if err := validateName(name); err != nil {
		return err
	}

	path := filepath.Join(dir, name)

	// O_EXCL: a stored name is never overwritten
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	defer func() {
		if cErr := f.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", path, cErr)
		}
	}()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

// Remove deletes one stored file. A missing file is reported as an error.
func (s *Store) Remove(at time.Time, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	path := s.Path(at, name)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", path, err)
	}

	return nil
}

func validateName(name string) error {
	if name == "" || name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}
