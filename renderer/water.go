package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/palette"
	"github.com/pthm-cable/aquarium/shaders"
)

// WaterBackground renders the animated oxygen-tinted water.
type WaterBackground struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32
	baseColorLoc  int32
	waveColorLoc  int32
	width         float32
	height        float32
	initialized   bool
}

// NewWaterBackground creates a new water background renderer.
func NewWaterBackground(width, height float32) *WaterBackground {
	return &WaterBackground{
		width:  width,
		height: height,
	}
}

// Init compiles the shader (must be called after raylib window is created).
// A failed compile is logged and the returned program is used anyway.
func (w *WaterBackground) Init() {
	if w.initialized {
		return
	}

	w.shader = rl.LoadShaderFromMemory(shaders.Vertex, shaders.Water)
	if w.shader.ID == 0 {
		slog.Warn("water shader failed to load; background may be blank")
	}
	w.timeLoc = rl.GetShaderLocation(w.shader, shaders.UniformTime)
	w.resolutionLoc = rl.GetShaderLocation(w.shader, shaders.UniformResolution)
	w.baseColorLoc = rl.GetShaderLocation(w.shader, shaders.UniformBaseColor)
	w.waveColorLoc = rl.GetShaderLocation(w.shader, shaders.UniformWaveColor)

	// Resolution is fixed for the run
	rl.SetShaderValue(w.shader, w.resolutionLoc, []float32{w.width, w.height}, rl.ShaderUniformVec2)

	w.initialized = true
}

// Draw renders the background for the given wall-clock time and oxygen level.
func (w *WaterBackground) Draw(time, oxygen float32) {
	if !w.initialized {
		w.Init()
	}

	base, wave := palette.Water(oxygen)
	rl.SetShaderValue(w.shader, w.timeLoc, []float32{time}, rl.ShaderUniformFloat)
	rl.SetShaderValue(w.shader, w.baseColorLoc, []float32{base.R, base.G, base.B}, rl.ShaderUniformVec3)
	rl.SetShaderValue(w.shader, w.waveColorLoc, []float32{wave.R, wave.G, wave.B}, rl.ShaderUniformVec3)

	rl.BeginShaderMode(w.shader)
	rl.DrawRectangle(0, 0, int32(w.width), int32(w.height), rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (w *WaterBackground) Unload() {
	if w.initialized {
		rl.UnloadShader(w.shader)
		w.initialized = false
	}
}
