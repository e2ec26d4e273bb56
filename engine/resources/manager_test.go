package resources

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager() = %v", err)
	}
	t.Cleanup(func() { _ = m.ReleaseAll() })
	return m, dir
}

func writeShader(t *testing.T, dir, name, src string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestAcquireCachesResource(t *testing.T) {
	m, dir := newTestManager(t)
	writeShader(t, dir, "quad.glsl", "void main() {}")

	first, err := m.Acquire(TypeShaderSource, "quad.glsl")
	if err != nil {
		t.Fatalf("Acquire() = %v", err)
	}
	second, err := m.Acquire(TypeShaderSource, "quad.glsl")
	if err != nil {
		t.Fatalf("Acquire() = %v", err)
	}
	if first != second {
		t.Fatal("second acquire did not hit the cache")
	}
	if first.Handle != second.Handle {
		t.Fatal("handle changed between acquires")
	}
}

func TestDirtyAssetReloadsKeepingHandle(t *testing.T) {
	m, dir := newTestManager(t)
	writeShader(t, dir, "quad.glsl", "// v1")

	first, err := m.Acquire(TypeShaderSource, "quad.glsl")
	if err != nil {
		t.Fatalf("Acquire() = %v", err)
	}

	writeShader(t, dir, "quad.glsl", "// v2")
	key := filepath.Clean(filepath.Join(dir, "quad.glsl"))
	m.mutex.Lock()
	m.cache[key].dirty = true
	m.mutex.Unlock()

	second, err := m.Acquire(TypeShaderSource, "quad.glsl")
	if err != nil {
		t.Fatalf("Acquire() after dirty = %v", err)
	}
	if second == first {
		t.Fatal("dirty asset was not reloaded")
	}
	if second.Handle != first.Handle {
		t.Fatal("handle not preserved across reload")
	}
	if got := second.Data.(*ShaderSourceData).Source; got != "// v2" {
		t.Fatalf("reloaded source = %q, want %q", got, "// v2")
	}
}

func TestAcquireTextureDecodesToRGBA(t *testing.T) {
	m, dir := newTestManager(t)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "player.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	res, err := m.Acquire(TypeTexture, "player.png")
	if err != nil {
		t.Fatalf("Acquire() = %v", err)
	}
	data, ok := res.Data.(*TextureData)
	if !ok {
		t.Fatalf("texture data type = %T", res.Data)
	}
	if data.Width != 2 || data.Height != 2 || data.Channels != 4 {
		t.Fatalf("texture = %dx%d/%d channels, want 2x2/4", data.Width, data.Height, data.Channels)
	}
	if len(data.Pixels) != 16 {
		t.Fatalf("pixel buffer = %d bytes, want 16", len(data.Pixels))
	}
	if data.Pixels[0] != 255 {
		t.Fatalf("top-left red = %d, want 255", data.Pixels[0])
	}
}

func TestAcquireMissingAssetFails(t *testing.T) {
	m, _ := newTestManager(t)
	if _, err := m.Acquire(TypeShaderSource, "absent.glsl"); err == nil {
		t.Fatal("Acquire() of missing asset = nil error")
	}
}

func TestAcquireUnknownTypeFails(t *testing.T) {
	m, _ := newTestManager(t)
	if _, err := m.Acquire(Type(99), "whatever"); err == nil {
		t.Fatal("Acquire() with unregistered type = nil error")
	}
}

func TestReleaseAllClosesManager(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager() = %v", err)
	}
	if err := m.ReleaseAll(); err != nil {
		t.Fatalf("ReleaseAll() = %v", err)
	}
	if _, err := m.Acquire(TypeShaderSource, "quad.glsl"); !errors.Is(err, ErrManagerClosed) {
		t.Fatalf("Acquire() after close = %v, want ErrManagerClosed", err)
	}
	if err := m.ReleaseAll(); !errors.Is(err, ErrManagerClosed) {
		t.Fatalf("second ReleaseAll() = %v, want ErrManagerClosed", err)
	}
}

func TestNewManagerRejectsMissingPath(t *testing.T) {
	if _, err := NewManager(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("NewManager() on missing path = nil error")
	}
}
