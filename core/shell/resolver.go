package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a search failed to find a file.
var ErrNotFound = exec.ErrNotFound

// DefaultSearchPath holds the system directories searched after the working
// directory.
var DefaultSearchPath = []string{"/usr/local/bin", "/usr/bin", "/bin"}

// Resolver finds programs and files in the working directory and a fixed list
// of system directories. It never changes the process working directory;
// candidates are built as full paths and checked on Fs.
type Resolver struct {
	Fs    afero.Fs
	Getwd func() (string, error)
	Dirs  []string
}

// NewResolver creates a resolver over the real filesystem and working
// directory.
func NewResolver(dirs []string) *Resolver {
	return &Resolver{
		Fs:    afero.NewOsFs(),
		Getwd: os.Getwd,
		Dirs:  dirs,
	}
}

func (r *Resolver) exists(path string) bool {
	_, err := r.Fs.Stat(path)
	return err == nil
}

// SearchPath returns the working directory followed by the system directories.
func (r *Resolver) SearchPath() ([]string, error) {
	wd, err := r.Getwd()
	if err != nil {
		return nil, err
	}
	return append([]string{wd}, r.Dirs...), nil
}

// Resolve returns the absolute path of name. If name contains a slash it is
// checked directly and nothing is searched.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}

	if strings.Contains(name, "/") {
		path, err := r.Abs(name)
		if err != nil {
			return "", err
		}
		if r.exists(path) {
			return path, nil
		}
		return "", ErrNotFound
	}

	dirs, err := r.SearchPath()
	if err != nil {
		return "", err
	}
	return r.search(dirs, name)
}

// ResolveSystem is like Resolve for a bare name but skips the working
// directory.
func (r *Resolver) ResolveSystem(name string) (string, error) {
	if name == "" || strings.Contains(name, "/") {
		return "", ErrNotFound
	}
	return r.search(r.Dirs, name)
}

// Abs joins relative paths onto the working directory.
func (r *Resolver) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := r.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

func (r *Resolver) search(dirs []string, name string) (string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, name)
		if r.exists(path) {
			return path, nil
		}
	}
	return "", ErrNotFound
}
