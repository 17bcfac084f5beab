package shaders

import (
	"strings"
	"testing"
)

func TestCutoutDiscardsBelowThreshold(t *testing.T) {
	if !strings.Contains(Cutout, "if (color.a < 0.1) discard;") {
		t.Errorf("cutout shader does not discard below alpha 0.1:\n%s", Cutout)
	}
	// Alpha comes from the texel only; the tint must not fade sprites
	if !strings.Contains(Cutout, "texel.a)") {
		t.Error("cutout alpha is not taken from the texel")
	}
}

func TestWaterDeclaresUniforms(t *testing.T) {
	for _, name := range []string{UniformTime, UniformResolution, UniformBaseColor, UniformWaveColor} {
		if !strings.Contains(Water, " "+name+";") {
			t.Errorf("water shader does not declare uniform %q", name)
		}
	}
}

func TestShadersShareVaryings(t *testing.T) {
	for _, v := range []string{"vec2 fragTexCoord;", "vec4 fragColor;"} {
		if !strings.Contains(Vertex, "out "+v) {
			t.Errorf("vertex shader does not output %s", v)
		}
		if !strings.Contains(Cutout, "in "+v) {
			t.Errorf("cutout shader does not read %s", v)
		}
	}
	for _, src := range []string{Vertex, Water, Cutout} {
		if !strings.HasPrefix(src, "#version 330\n") {
			t.Errorf("shader missing #version 330 header: %.30q", src)
		}
	}
}
