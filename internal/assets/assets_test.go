package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tansell/skugrid/internal/catalog"
)

func writePNG(t *testing.T, path string, w, h int, fill color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer func() { _ = f.Close() }()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
}

func TestStore_LoadDecodesDimensionsAndColor(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	writePNG(t, s.Path(42), 100, 80, color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff})

	thumb := s.Load(42)
	if !thumb.OK {
		t.Fatal("Load OK = false, want decoded thumb")
	}
	if thumb.Width != 100 || thumb.Height != 80 {
		t.Fatalf("dimensions = %dx%d, want 100x80", thumb.Width, thumb.Height)
	}
	if thumb.Color != "#ff0000" {
		t.Fatalf("Color = %q, want #ff0000", thumb.Color)
	}
}

func TestStore_MissingAssetDegradesAndIsCached(t *testing.T) {
	s := NewStore(t.TempDir())

	thumb := s.Load(7)
	if thumb.OK {
		t.Fatal("Load OK = true for missing asset, want placeholder")
	}

	// The miss must be cached so the renderer does not stat the file on
	// every frame.
	if _, ok := s.Cached(7); !ok {
		t.Fatal("Cached = miss not recorded")
	}
}

func TestStore_LoadReadsEachAssetOnce(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	writePNG(t, s.Path(3), 10, 10, color.NRGBA{G: 0xff, A: 0xff})

	first := s.Load(3)
	if err := os.Remove(s.Path(3)); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	second := s.Load(3)
	if second != first {
		t.Fatalf("second Load = %#v, want cached %#v", second, first)
	}
}

func TestStore_InvalidIDNeverTouchesDisk(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	thumb := s.Load(catalog.InvalidID)
	if thumb.OK {
		t.Fatal("Load OK = true for invalid identifier")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("asset dir has %d entries, want untouched", len(entries))
	}
}

func TestStore_Path(t *testing.T) {
	s := NewStore(filepath.Join("base", "img"))
	want := filepath.Join("base", "img", "42.png")
	if got := s.Path(42); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}
