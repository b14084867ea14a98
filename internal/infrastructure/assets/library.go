// Package assets finds and decodes the pictures the puzzle is cut from.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"log"
	"math/rand"
	"os"
	"path"
	"sort"
	"strings"
)

var (
	// ErrNoPictures means the directory holds no file with an accepted extension
	ErrNoPictures = errors.New("no pictures found")
	// ErrNoUsablePictures means every candidate failed to decode
	ErrNoUsablePictures = errors.New("no picture could be decoded")
)

// Picture is a decoded image and the file it came from
type Picture struct {
	Name  string
	Image image.Image
}

// Library picks random pictures from a directory
type Library struct {
	fsys fs.FS
	dir  string
	exts []string
	rng  *rand.Rand
}

// NewLibrary creates a library over a filesystem directory
func NewLibrary(dir string, exts []string, rng *rand.Rand) *Library {
	return &Library{
		fsys: os.DirFS(dir),
		dir:  dir,
		exts: normalizeExts(exts),
		rng:  rng,
	}
}

// NewFSLibrary creates a library over the root of fsys
func NewFSLibrary(fsys fs.FS, exts []string, rng *rand.Rand) *Library {
	return &Library{
		fsys: fsys,
		dir:  ".",
		exts: normalizeExts(exts),
		rng:  rng,
	}
}

func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// Dir returns the directory the library reads from
func (l *Library) Dir() string {
	return l.dir
}

// List returns the sorted names of regular files with an accepted extension
func (l *Library) List() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read picture directory %s: %w", l.dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if l.accepts(e.Name()) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s (accepted: %s)", ErrNoPictures, l.dir, strings.Join(l.exts, " "))
	}

	sort.Strings(names)
	return names, nil
}

func (l *Library) accepts(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range l.exts {
		if ext == e {
			return true
		}
	}
	return false
}

// Pick chooses a picture uniformly at random and decodes it. A picture
// that fails to decode is logged and another candidate is tried.
func (l *Library) Pick() (*Picture, error) {
	names, err := l.List()
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, i := range l.rng.Perm(len(names)) {
		pic, err := l.Load(names[i])
		if err == nil {
			log.Printf("picture: using %s (%dx%d)", pic.Name, pic.Image.Bounds().Dx(), pic.Image.Bounds().Dy())
			return pic, nil
		}
		log.Printf("picture: skipping %s: %v", names[i], err)
		lastErr = err
	}

	return nil, fmt.Errorf("%w in %s: %w", ErrNoUsablePictures, l.dir, lastErr)
}

// Load decodes a single picture by name
func (l *Library) Load(name string) (*Picture, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open picture %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode picture %s: %w", name, err)
	}

	return &Picture{Name: name, Image: img}, nil
}
