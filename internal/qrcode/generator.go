// Package qrcode produces scannable PNG codes that link back to a
// single reclamation's detail view, and serves the stored images.
package qrcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	qrc "github.com/skip2/go-qrcode"

	"reclamations/backend/internal/models"
	"reclamations/backend/internal/reclamation"
)

// ErrImageNotFound is returned by Image for an unknown filename.
var ErrImageNotFound = errors.New("qr image not found")

// Source is the lookup the generator needs; *reclamation.Service
// satisfies it.
type Source interface {
	GetByID(id int) (models.Reclamation, bool, error)
}

// Generator encodes reclamation URLs into PNG files under a fixed
// directory, one file per reclamation, named "<id>.png". Regenerating
// overwrites the previous image.
type Generator struct {
	Reclamations Source
	// BaseURL is the public prefix of the detail view, e.g.
	// "http://localhost:8083/reclamations".
	BaseURL string
	// Dir is the blob directory holding the generated images.
	Dir string
	// Size is the square image size in pixels.
	Size int
}

// NewGenerator creates a generator and makes sure the blob directory
// exists.
func NewGenerator(src Source, baseURL, dir string, size int) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create qr directory: %w", err)
	}
	return &Generator{Reclamations: src, BaseURL: baseURL, Dir: dir, Size: size}, nil
}

// Generate encodes the detail URL of the given reclamation into
// "<Dir>/<id>.png" and returns that URL. Unknown ids return
// reclamation.ErrNotFound.
func (g *Generator) Generate(id int) (string, error) {
	_, found, err := g.Reclamations.GetByID(id)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("cannot generate qr for id %d: %w", id, reclamation.ErrNotFound)
	}

	url := fmt.Sprintf("%s/%d", g.BaseURL, id)
	path := filepath.Join(g.Dir, fmt.Sprintf("%d.png", id))
	if err := qrc.WriteFile(url, qrc.Medium, g.Size, path); err != nil {
		return "", fmt.Errorf("failed to write qr image: %w", err)
	}
	return url, nil
}

// Image returns the raw PNG bytes for a previously generated code.
// The filename is reduced to its base so callers cannot reach outside
// the blob directory.
func (g *Generator) Image(filename string) ([]byte, error) {
	path := filepath.Join(g.Dir, filepath.Base(filename))
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
