// Package assets owns every decoded texture for the demo. Each image is
// loaded and uploaded once; bodies refer to textures by name and share the
// same handle.
package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"
)

// Required lists the textures the demo needs, in load order. Each name maps
// to <name>.bmp in the asset directory.
var Required = []string{
	"stars",
	"sun",
	"mercury",
	"venus",
	"earth",
	"mars",
	"jupiter",
	"saturn",
	"uranus",
	"neptune",
}

// Library holds the loaded textures keyed by asset name.
type Library struct {
	images map[string]*ebiten.Image
}

// Load reads every required BMP from dir and uploads it as a texture.
// Any missing or undecodable file fails the whole load; callers treat that
// as fatal.
func Load(dir string) (*Library, error) {
	lib := &Library{
		images: make(map[string]*ebiten.Image, len(Required)),
	}

	for _, name := range Required {
		src, err := readBMP(filepath.Join(dir, name+".bmp"))
		if err != nil {
			return nil, fmt.Errorf("load texture %q: %w", name, err)
		}
		lib.images[name] = ebiten.NewImageFromImage(src)
	}

	return lib, nil
}

func readBMP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Image returns the shared handle for a loaded texture, or nil if the name
// is unknown. Every caller gets the same image; nobody copies textures.
func (l *Library) Image(name string) *ebiten.Image {
	return l.images[name]
}
