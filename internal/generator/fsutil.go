package generator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	billy "github.com/go-git/go-billy/v5"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// EnsureDirectory joins root and segments and creates the directory, with
// any missing parents, when it does not exist. It returns the joined path
// and whether anything was created.
func EnsureDirectory(fsys billy.Filesystem, root string, segments ...string) (string, bool, error) {
	dir := fsys.Join(append([]string{root}, segments...)...)

	info, err := fsys.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return dir, false, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return dir, false, nil
	case !errors.Is(err, os.ErrNotExist):
		return dir, false, fmt.Errorf("stat %s: %w", dir, err)
	}

	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return dir, false, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, true, nil
}

// EnsureFile writes content to path only when path does not exist yet.
// The create is exclusive, so a file that appears between the check and
// the create is left untouched and reported as not created.
func EnsureFile(fsys billy.Filesystem, path, content string) (bool, error) {
	if _, err := fsys.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create %s: %w", path, err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	return true, nil
}

// lockedFS serializes the metadata calls EnsureDirectory and EnsureFile
// make. memfs keeps its tree in unguarded maps.
type lockedFS struct {
	billy.Filesystem
	mu sync.Mutex
}

func (l *lockedFS) Stat(filename string) (os.FileInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Filesystem.Stat(filename)
}

func (l *lockedFS) MkdirAll(filename string, perm os.FileMode) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Filesystem.MkdirAll(filename, perm)
}

func (l *lockedFS) OpenFile(filename string, flag int, perm os.FileMode) (billy.File, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.Filesystem.OpenFile(filename, flag, perm)
}
