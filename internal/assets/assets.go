// Package assets resolves SKU images from the external asset store: a
// directory of {id}.png files consumed read-only. Loads happen lazily, one
// per visible cell, and every outcome (including a miss) is cached so an
// asset is read at most once per session.
package assets

import (
	"fmt"
	"image/color"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/tansell/skugrid/internal/catalog"
)

// Thumb is the terminal-renderable summary of one SKU image: its pixel
// dimensions and dominant color. OK is false when the asset is missing or
// undecodable; the cell then degrades to a placeholder.
type Thumb struct {
	Width  int
	Height int
	Color  string // dominant color as #rrggbb
	OK     bool
}

// Store caches thumbs per SKU identifier. Safe for concurrent use; loads
// for different identifiers may run in parallel.
type Store struct {
	dir string

	mu    sync.Mutex
	cache map[int64]Thumb
}

// NewStore creates a Store over the given asset directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir, cache: make(map[int64]Thumb)}
}

// Path returns the asset path for a SKU identifier.
func (s *Store) Path(id int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.png", id))
}

// Load returns the thumb for id, reading and decoding the asset on first
// use. An invalid identifier never touches the filesystem.
func (s *Store) Load(id int64) Thumb {
	if id == catalog.InvalidID {
		return Thumb{}
	}

	s.mu.Lock()
	if thumb, ok := s.cache[id]; ok {
		s.mu.Unlock()
		return thumb
	}
	s.mu.Unlock()

	thumb := s.decode(id)

	s.mu.Lock()
	s.cache[id] = thumb
	s.mu.Unlock()
	return thumb
}

// Cached reports the thumb for id only if it has already been loaded.
func (s *Store) Cached(id int64) (Thumb, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	thumb, ok := s.cache[id]
	return thumb, ok
}

func (s *Store) decode(id int64) Thumb {
	img, err := imaging.Open(s.Path(id))
	if err != nil {
		return Thumb{}
	}

	bounds := img.Bounds()

	// Box-filter the whole image down to one pixel to get its average
	// color for the cell swatch.
	dot := imaging.Resize(img, 1, 1, imaging.Box)
	c := color.NRGBAModel.Convert(dot.At(0, 0)).(color.NRGBA)

	return Thumb{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Color:  fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
		OK:     true,
	}
}
