package fixture

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/tony-format/cborfix/debug"
)

var (
	ErrWrite = errors.New("write error")
	ErrRead  = errors.New("read error")
)

// WriteFile writes d to a temp file next to p and then renames it to p,
// so p is either left untouched or holds exactly d. A new file gets mode
// 0644; an existing file keeps its permission bits. When p is a symlink
// the file it points to is replaced and the link is kept.
func WriteFile(p string, d []byte) error {
	target, mode, err := writeTarget(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpFile := f.Name()
	if debug.Write() {
		debug.Logf("writing %d bytes to %s via %s mode %v\n", len(d), target, tmpFile, mode)
	}
	if err := writeSync(f, d, mode); err != nil {
		f.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	// Atomic rename
	if err := os.Rename(tmpFile, target); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// writeTarget resolves symlinks at p and returns the path to replace with
// the mode the replacement should have.
func writeTarget(p string) (string, fs.FileMode, error) {
	target, err := filepath.EvalSymlinks(p)
	if errors.Is(err, fs.ErrNotExist) {
		return p, 0644, nil
	}
	if err != nil {
		return "", 0, err
	}
	st, err := os.Stat(target)
	if err != nil {
		return "", 0, err
	}
	return target, st.Mode().Perm(), nil
}

func writeSync(f *os.File, d []byte, mode fs.FileMode) error {
	if err := f.Chmod(mode); err != nil {
		return err
	}
	if _, err := f.Write(d); err != nil {
		return err
	}
	return f.Sync()
}

func readFile(p string) ([]byte, error) {
	d, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return d, nil
}
