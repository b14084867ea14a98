package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultExts = []string{".png", ".jpg", ".jpeg"}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLibrary_ListFiltersByExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"b.png":       {Data: []byte("x")},
		"a.JPG":       {Data: []byte("x")},
		"c.jpeg":      {Data: []byte("x")},
		"notes.txt":   {Data: []byte("x")},
		"noext":       {Data: []byte("x")},
		"sub/d.png":   {Data: []byte("x")},
		"archive.gif": {Data: []byte("x")},
	}
	lib := NewFSLibrary(fsys, defaultExts, rand.New(rand.NewSource(1)))

	names, err := lib.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.JPG", "b.png", "c.jpeg"}, names)
}

func TestLibrary_ListEmpty(t *testing.T) {
	fsys := fstest.MapFS{"readme.md": {Data: []byte("x")}}
	lib := NewFSLibrary(fsys, defaultExts, rand.New(rand.NewSource(1)))

	_, err := lib.List()
	assert.ErrorIs(t, err, ErrNoPictures)

	_, err = lib.Pick()
	assert.ErrorIs(t, err, ErrNoPictures)
}

func TestLibrary_MissingDirectory(t *testing.T) {
	lib := NewLibrary(filepath.Join(t.TempDir(), "missing"), defaultExts, rand.New(rand.NewSource(1)))

	_, err := lib.List()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read picture directory")
}

func TestLibrary_PickDecodes(t *testing.T) {
	fsys := fstest.MapFS{"only.png": {Data: encodePNG(t, 30, 20)}}
	lib := NewFSLibrary(fsys, defaultExts, rand.New(rand.NewSource(1)))

	pic, err := lib.Pick()
	require.NoError(t, err)
	assert.Equal(t, "only.png", pic.Name)
	assert.Equal(t, image.Rect(0, 0, 30, 20), pic.Image.Bounds())
}

func TestLibrary_PickFallsBackOnCorruptPicture(t *testing.T) {
	fsys := fstest.MapFS{
		"broken1.png": {Data: []byte("not a png")},
		"broken2.jpg": {Data: []byte("not a jpeg")},
		"good.png":    {Data: encodePNG(t, 9, 9)},
	}

	for seed := int64(0); seed < 20; seed++ {
		lib := NewFSLibrary(fsys, defaultExts, rand.New(rand.NewSource(seed)))
		pic, err := lib.Pick()
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, "good.png", pic.Name)
	}
}

func TestLibrary_PickAllCorrupt(t *testing.T) {
	fsys := fstest.MapFS{
		"broken1.png": {Data: []byte("not a png")},
		"broken2.jpg": {Data: []byte("not a jpeg")},
	}
	lib := NewFSLibrary(fsys, defaultExts, rand.New(rand.NewSource(1)))

	_, err := lib.Pick()
	assert.ErrorIs(t, err, ErrNoUsablePictures)
}

func TestLibrary_PickIsRoughlyUniform(t *testing.T) {
	data := encodePNG(t, 3, 3)
	fsys := fstest.MapFS{
		"a.png": {Data: data},
		"b.png": {Data: data},
		"c.png": {Data: data},
	}
	lib := NewFSLibrary(fsys, defaultExts, rand.New(rand.NewSource(5)))

	counts := map[string]int{}
	for i := 0; i < 900; i++ {
		pic, err := lib.Pick()
		require.NoError(t, err)
		counts[pic.Name]++
	}
	for name, c := range counts {
		assert.InDelta(t, 300, c, 90, name)
	}
	assert.Len(t, counts, 3)
}

func TestLibrary_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pic.png"), encodePNG(t, 12, 6), 0o644))

	lib := NewLibrary(dir, []string{"png"}, rand.New(rand.NewSource(1)))
	assert.Equal(t, dir, lib.Dir())

	pic, err := lib.Pick()
	require.NoError(t, err)
	assert.Equal(t, 12, pic.Image.Bounds().Dx())
}
