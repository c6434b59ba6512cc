package screenshots

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("cover.png"))
	assert.True(t, Allowed("COVER.JPG"))
	assert.True(t, Allowed("shot.jpeg"))
	assert.True(t, Allowed("anim.gif"))
	assert.True(t, Allowed("old.bmp"))

	assert.False(t, Allowed("notes.txt"))
	assert.False(t, Allowed("script.sh"))
	assert.False(t, Allowed("noext"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "cover.png", Sanitize("cover.png"))
	assert.Equal(t, "my_cover__1_.png", Sanitize("my cover (1).png"))
	assert.Equal(t, "passwd", Sanitize("../../etc/passwd"))
	assert.Equal(t, "evil.png", Sanitize("..\\..\\evil.png"))
	assert.Equal(t, "file", Sanitize("..."))
}

func TestSave(t *testing.T) {
	root := filepath.Join(t.TempDir(), "screenshots")
	dir, err := New(root)
	require.NoError(t, err)

	stored, err := dir.Save(4, "dune cover.png", bytes.NewBufferString("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "screenshots/media_4_dune_cover.png", stored)

	raw, err := os.ReadFile(filepath.Join(root, "media_4_dune_cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(raw))
}

func TestSave_RejectsExtension(t *testing.T) {
	dir, err := New(filepath.Join(t.TempDir(), "screenshots"))
	require.NoError(t, err)

	_, err = dir.Save(1, "malware.exe", bytes.NewBufferString("nope"))
	assert.ErrorIs(t, err, ErrNotAllowed)
}

func TestSave_RejectsOversized(t *testing.T) {
	root := filepath.Join(t.TempDir(), "screenshots")
	dir, err := New(root)
	require.NoError(t, err)

	big := bytes.NewBuffer(make([]byte, MaxFileSize+1))
	_, err = dir.Save(1, "huge.png", big)
	assert.ErrorIs(t, err, ErrTooLarge)

	// Nothing may be left behind after a rejected upload.
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "screenshots")
	dir, err := New(root)
	require.NoError(t, err)

	stored, err := dir.Save(2, "shot.jpg", bytes.NewBufferString("x"))
	require.NoError(t, err)

	p, ok := dir.Path(filepath.Base(stored))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "media_2_shot.jpg"), p)

	_, ok = dir.Path("missing.png")
	assert.False(t, ok)

	_, ok = dir.Path("../media_2_shot.jpg")
	assert.True(t, ok) // sanitized down to the bare filename
}

func TestRemove(t *testing.T) {
	root := filepath.Join(t.TempDir(), "screenshots")
	dir, err := New(root)
	require.NoError(t, err)

	stored, err := dir.Save(3, "shot.png", bytes.NewBufferString("x"))
	require.NoError(t, err)

	require.NoError(t, dir.Remove(stored))
	_, ok := dir.Path("media_3_shot.png")
	assert.False(t, ok)

	// Removing twice is fine.
	assert.NoError(t, dir.Remove(stored))
	assert.NoError(t, dir.Remove(""))
}
