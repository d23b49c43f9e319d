package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IncomingFile is an upload as the handler received it, decoupled from the
// multipart types so services stay HTTP-free.
type IncomingFile struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Store persists CV uploads under a single root directory. Stored names are
// timestamp- and uuid-prefixed so concurrent submissions of the same
// filename never collide.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{root: root}, nil
}

// Save writes the content to a temp file in the root, syncs it to disk and
// renames it into place, so a stored name always refers to a complete file.
// Returns the stored name.
func (s *Store) Save(original string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s_%s", time.Now().UnixNano(), uuid.NewString()[:8], Sanitize(original))

	tmp, err := os.CreateTemp(s.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("sync upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.root, name)); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. Missing files are not an error, so cleanup
// after a failed submission is idempotent.
func (s *Store) Remove(name string) error {
	p, err := s.safePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path resolves a stored name for serving, refusing names that would escape
// the root.
func (s *Store) Path(name string) (string, error) {
	return s.safePath(name)
}

func (s *Store) safePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid stored name %q", name)
	}
	return filepath.Join(s.root, name), nil
}

// Sanitize reduces an original filename to its base name with anything
// outside [A-Za-z0-9._-] replaced, keeping stored names shell- and URL-safe.
func Sanitize(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		out = "bestand"
	}
	return out
}
