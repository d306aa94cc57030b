package sink

import (
	"bytes"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/classpage/internal/foundation/errors"
)

// Destination persists the final bytes of one page.
type Destination interface {
	Path() string
	Commit(content []byte) error
	Abort() error
}

// FileDestination writes a page atomically: content goes to a temporary file in
// the target directory, which is renamed over the target on Commit.
type FileDestination struct {
	path string
	tmp  *os.File
	done bool
}

// NewFileDestination reserves a temporary file next to path. It fails when the
// directory does not exist or is not writable.
func NewFileDestination(path string) (*FileDestination, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to create page").
			WithContext("path", path).
			Build()
	}
	return &FileDestination{path: path, tmp: tmp}, nil
}

// Path returns the final page path.
func (d *FileDestination) Path() string { return d.path }

// Commit writes content and moves it into place.
func (d *FileDestination) Commit(content []byte) error {
	if d.done {
		return errors.InternalError("page already committed or aborted").WithContext("path", d.path).Build()
	}
	d.done = true

	fail := func(err error, msg string) error {
		_ = d.tmp.Close()
		_ = os.Remove(d.tmp.Name())
		return errors.WrapError(err, errors.CategoryFileSystem, msg).WithContext("path", d.path).Build()
	}
	if _, err := d.tmp.Write(content); err != nil {
		return fail(err, "failed to write page")
	}
	if err := d.tmp.Sync(); err != nil {
		return fail(err, "failed to sync page")
	}
	if err := d.tmp.Chmod(0o644); err != nil {
		return fail(err, "failed to set page permissions")
	}
	if err := d.tmp.Close(); err != nil {
		_ = os.Remove(d.tmp.Name())
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to close page").WithContext("path", d.path).Build()
	}
	if err := os.Rename(d.tmp.Name(), d.path); err != nil {
		_ = os.Remove(d.tmp.Name())
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to persist page").WithContext("path", d.path).Build()
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (d *FileDestination) Abort() error {
	if d.done {
		return nil
	}
	d.done = true
	_ = d.tmp.Close()
	if err := os.Remove(d.tmp.Name()); err != nil && !os.IsNotExist(err) {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to discard page").WithContext("path", d.path).Build()
	}
	return nil
}

// MemoryDestination keeps committed content in memory.
type MemoryDestination struct {
	Name      string
	Committed bool
	Aborted   bool
	buf       bytes.Buffer
}

// Path returns Name.
func (m *MemoryDestination) Path() string { return m.Name }

// Commit stores content.
func (m *MemoryDestination) Commit(content []byte) error {
	if m.Committed {
		return errors.InternalError("page already committed").WithContext("path", m.Name).Build()
	}
	m.buf.Reset()
	m.buf.Write(content)
	m.Committed = true
	return nil
}

// Abort marks the destination as aborted.
func (m *MemoryDestination) Abort() error {
	m.Aborted = true
	return nil
}

// Bytes returns the committed content.
func (m *MemoryDestination) Bytes() []byte { return m.buf.Bytes() }

// String returns the committed content as a string.
func (m *MemoryDestination) String() string { return m.buf.String() }
