package renderer

import (
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/geometry"
	"github.com/pthm-cable/aquarium/palette"
	"github.com/pthm-cable/aquarium/shaders"
)

// FishRenderer draws every fish as a tinted, optionally mirrored sprite.
type FishRenderer struct {
	texture rl.Texture2D
	cutout  rl.Shader
	loaded  bool
}

// LoadFishRenderer loads the sprite texture and the cutout shader. A missing
// or undecodable texture is an error; a bad shader only logs.
func LoadFishRenderer(texturePath string) (*FishRenderer, error) {
	if _, err := os.Stat(texturePath); err != nil {
		return nil, fmt.Errorf("fish texture: %w", err)
	}

	tex := rl.LoadTexture(texturePath)
	if tex.ID == 0 {
		return nil, fmt.Errorf("fish texture %s: could not be decoded", texturePath)
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureWrap(tex, rl.WrapClamp)

	cutout := rl.LoadShaderFromMemory(shaders.Vertex, shaders.Cutout)
	if cutout.ID == 0 {
		slog.Warn("cutout shader failed to load; sprites will blend")
	}

	slog.Debug("fish texture loaded", "path", texturePath, "width", tex.Width, "height", tex.Height)
	return &FishRenderer{texture: tex, cutout: cutout, loaded: true}, nil
}

// Draw renders fish in snapshot order.
func (f *FishRenderer) Draw(fish []components.Fish, vp geometry.Viewport) {
	texW := float32(f.texture.Width)
	texH := float32(f.texture.Height)

	rl.BeginShaderMode(f.cutout)
	for i := range fish {
		fi := &fish[i]

		src, dst := vp.SpriteRects(fi.Position.X, fi.Position.Y, fi.Body.Size, texW, texH, fi.Mood.FacingRight)

		r, g, b := palette.Bytes(palette.Tint(fi.Mood.Happiness))
		rl.DrawTexturePro(f.texture, rectangle(src), rectangle(dst), rl.Vector2{}, 0, rl.NewColor(r, g, b, 255))
	}
	rl.EndShaderMode()
}

// Unload frees resources.
func (f *FishRenderer) Unload() {
	if !f.loaded {
		return
	}
	rl.UnloadShader(f.cutout)
	rl.UnloadTexture(f.texture)
	f.loaded = false
}

func rectangle(r geometry.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
