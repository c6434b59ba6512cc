// Package screenshots stores uploaded images on disk under a single
// upload directory, with server-controlled filenames derived from the
// owning record's id and a sanitized original name.
package screenshots

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// MaxFileSize caps uploads at 5 MiB.
const MaxFileSize = 5 << 20

var (
	ErrNotAllowed = errors.New("file type not allowed")
	ErrTooLarge   = errors.New("file exceeds maximum size")
)

var allowedExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
}

// Dir is a screenshot directory on the local filesystem.
type Dir struct {
	root string
}

// New makes sure the upload directory exists.
func New(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Dir{root: root}, nil
}

// Allowed reports whether the filename carries a permitted image
// extension.
func Allowed(filename string) bool {
	_, ok := allowedExts[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// AllowedExtensions lists the accepted extensions without the leading
// dot, for use in error messages.
func AllowedExtensions() []string {
	return []string{"png", "jpg", "jpeg", "gif", "bmp"}
}

// Sanitize strips any path components and replaces every character
// outside [A-Za-z0-9._-] with an underscore.
func Sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	clean := strings.Trim(b.String(), "._")
	if clean == "" {
		return "file"
	}
	return clean
}

// Save writes an upload for the given record and returns the stored path
// as recorded on the media item, e.g. "screenshots/media_4_cover.png".
// Uploads over MaxFileSize are rejected and nothing is left on disk.
func (d *Dir) Save(mediaID int, original string, r io.Reader) (string, error) {
	if !Allowed(original) {
		return "", ErrNotAllowed
	}

	filename := fmt.Sprintf("media_%d_%s", mediaID, Sanitize(original))
	dst := filepath.Join(d.root, filename)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create screenshot file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, MaxFileSize+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		os.Remove(dst)
		return "", fmt.Errorf("write screenshot file: %w", err)
	case closeErr != nil:
		os.Remove(dst)
		return "", fmt.Errorf("write screenshot file: %w", closeErr)
	case written > MaxFileSize:
		os.Remove(dst)
		return "", ErrTooLarge
	}

	return path.Join(filepath.Base(d.root), filename), nil
}

// Path resolves a stored filename to its absolute on-disk location,
// reporting whether the file exists. The name is sanitized first so
// traversal outside the upload directory is not possible.
func (d *Dir) Path(name string) (string, bool) {
	p := filepath.Join(d.root, Sanitize(name))
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

// Remove deletes the file behind a stored path as recorded on a media
// item. A missing file is not an error.
func (d *Dir) Remove(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	p := filepath.Join(d.root, filepath.Base(filepath.FromSlash(storedPath)))
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove screenshot file: %w", err)
	}
	return nil
}
