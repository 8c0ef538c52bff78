package fspath

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"
)

// Path is a filesystem path bound to a backend. The zero value is not
// usable; construct with New or NewOn.
type Path struct {
	p  string
	fs afero.Fs
}

// New returns a Path on the OS filesystem.
func New(p string) Path {
	return NewOn(afero.NewOsFs(), p)
}

// NewOn returns a Path on the given backend.
func NewOn(fs afero.Fs, p string) Path {
	return Path{p: filepath.Clean(p), fs: fs}
}

// String returns the path string.
func (p Path) String() string { return p.p }

// --------------------------------------------------------------------------
// Pure Path Manipulation
// --------------------------------------------------------------------------

// Join appends elems to the path, keeping the backend.
func (p Path) Join(elems ...string) Path {
	parts := append([]string{p.p}, elems...)
	return Path{p: filepath.Join(parts...), fs: p.fs}
}

// Base returns the last element of the path.
func (p Path) Base() string { return filepath.Base(p.p) }

// Dir returns the parent as a Path on the same backend.
func (p Path) Dir() Path {
	return Path{p: filepath.Dir(p.p), fs: p.fs}
}

// Ext returns the filename extension including the dot, or "".
func (p Path) Ext() string { return filepath.Ext(p.p) }

// --------------------------------------------------------------------------
// Queries
// --------------------------------------------------------------------------

// Info is the subset of stat data the package exposes.
type Info struct {
	Mode    os.FileMode
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Stat returns file metadata.
func (p Path) Stat() (Info, error) {
	fi, err := p.fs.Stat(p.p)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Mode:    fi.Mode(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}, nil
}

// Exists reports whether the path exists. Errors other than non-existence
// are treated as absence.
func (p Path) Exists() bool {
	ok, err := afero.Exists(p.fs, p.p)
	return err == nil && ok
}

// IsDir reports whether the path exists and is a directory.
func (p Path) IsDir() bool {
	ok, err := afero.IsDir(p.fs, p.p)
	return err == nil && ok
}

// ListDir returns the names of the directory's entries, sorted.
func (p Path) ListDir() ([]string, error) {
	infos, err := afero.ReadDir(p.fs, p.p)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(infos))
	for i, fi := range infos {
		names[i] = fi.Name()
	}
	sort.Strings(names)
	return names, nil
}

// --------------------------------------------------------------------------
// Mutations
// --------------------------------------------------------------------------

// MkDir creates the directory; the parent must exist.
func (p Path) MkDir(perm os.FileMode) error {
	return p.fs.Mkdir(p.p, perm)
}

// MkDirAll creates the directory and any missing parents.
func (p Path) MkDirAll(perm os.FileMode) error {
	return p.fs.MkdirAll(p.p, perm)
}

// RmDir removes the directory, which must be empty.
func (p Path) RmDir() error {
	names, err := p.ListDir()
	if err != nil {
		return err
	}
	if len(names) > 0 {
		return &os.PathError{Op: "rmdir", Path: p.p, Err: os.ErrExist}
	}
	return p.fs.Remove(p.p)
}

// Remove removes the file or empty directory.
func (p Path) Remove() error {
	return p.fs.Remove(p.p)
}

// WriteText writes s to the file, creating or truncating it.
func (p Path) WriteText(s string) error {
	return afero.WriteFile(p.fs, p.p, []byte(s), 0o644)
}

// ReadText reads the whole file as a string.
func (p Path) ReadText() (string, error) {
	b, err := afero.ReadFile(p.fs, p.p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
