package resources

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	// Decoders for the texture formats the client ships with.
	_ "image/jpeg"
	_ "image/png"

	"github.com/fzipp/bmfont"
	_ "golang.org/x/image/bmp"
)

// Loader decodes one asset type from disk into a Resource payload.
type Loader interface {
	Load(path string) (*Resource, error)
	Unload(*Resource) error
}

type TextureLoader struct{}

func (tl *TextureLoader) Load(path string) (*Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	// Normalize every format to tightly packed RGBA.
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)

	return &Resource{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FullPath: path,
		Type:     TypeTexture,
		DataSize: uint64(len(rgba.Pix)),
		Data: &TextureData{
			Width:    uint32(bounds.Dx()),
			Height:   uint32(bounds.Dy()),
			Channels: 4,
			Pixels:   rgba.Pix,
		},
	}, nil
}

func (tl *TextureLoader) Unload(*Resource) error {
	return nil
}

type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string) (*Resource, error) {
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font descriptor %s: %w", path, err)
	}

	pages := make([]string, 0, len(desc.Pages))
	for _, p := range desc.Pages {
		pages = append(pages, filepath.Join(filepath.Dir(path), p.File))
	}

	return &Resource{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FullPath: path,
		Type:     TypeBitmapFont,
		DataSize: uint64(len(desc.Chars)),
		Data: &BitmapFontData{
			Descriptor: desc,
			Pages:      pages,
		},
	}, nil
}

func (fl *BitmapFontLoader) Unload(*Resource) error {
	return nil
}

type ShaderSourceLoader struct{}

func (sl *ShaderSourceLoader) Load(path string) (*Resource, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Resource{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		FullPath: path,
		Type:     TypeShaderSource,
		DataSize: uint64(len(src)),
		Data: &ShaderSourceData{
			Source: string(src),
		},
	}, nil
}

func (sl *ShaderSourceLoader) Unload(*Resource) error {
	return nil
}
