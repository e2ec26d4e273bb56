package resources

import (
	"github.com/fzipp/bmfont"
	"github.com/google/uuid"
)

type Type uint8

const (
	TypeTexture Type = iota
	TypeBitmapFont
	TypeShaderSource
)

func (t Type) String() string {
	switch t {
	case TypeTexture:
		return "texture"
	case TypeBitmapFont:
		return "bitmap_font"
	case TypeShaderSource:
		return "shader_source"
	}
	return "unknown"
}

// Resource is one loaded asset. Handle stays stable for the lifetime of the
// cache entry, across hot reloads.
type Resource struct {
	Handle   uuid.UUID
	Name     string
	FullPath string
	Type     Type
	DataSize uint64
	Data     interface{}
}

// TextureData is decoded pixel data, always RGBA, origin top-left.
type TextureData struct {
	Width    uint32
	Height   uint32
	Channels uint8
	Pixels   []uint8
}

// BitmapFontData carries a parsed AngelCode .fnt descriptor plus the page
// image paths to acquire as textures.
type BitmapFontData struct {
	Descriptor *bmfont.Descriptor
	Pages      []string
}

// ShaderSourceData is raw GLSL text.
type ShaderSourceData struct {
	Source string
}
