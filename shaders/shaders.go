// Package shaders holds the GLSL 330 sources used by the renderer.
// Attribute and uniform names follow raylib's defaults.
package shaders

import "strconv"

// CutoutAlpha is the texel alpha below which sprite fragments are discarded.
const CutoutAlpha = 0.1

// Water uniform names.
const (
	UniformTime       = "time"
	UniformResolution = "resolution"
	UniformBaseColor  = "baseColor"
	UniformWaveColor  = "waveColor"
)

// Vertex matches raylib's default attribute and uniform names so the
// shaders work with the regular shape and texture batch.
const Vertex = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec4 vertexColor;

uniform mat4 mvp;

out vec2 fragTexCoord;
out vec4 fragColor;

void main() {
    fragTexCoord = vertexTexCoord;
    fragColor = vertexColor;
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

// Water mixes a base and a wave color by the magnitude of two
// crossing sine waves. The x axis is stretched by the display aspect so the
// waves keep their shape on a non-square screen.
const Water = `#version 330
out vec4 finalColor;

uniform float time;
uniform vec2 resolution;
uniform vec3 baseColor;
uniform vec3 waveColor;

void main() {
    vec2 ndc = gl_FragCoord.xy / resolution * 2.0 - 1.0;
    vec2 pos = ndc * vec2(resolution.x / resolution.y, 1.0);

    float wave1 = sin(pos.x * 5.0 + time * 0.5) * 0.1;
    float wave2 = sin(pos.y * 3.0 + time * 0.3) * 0.05;

    finalColor = vec4(mix(baseColor, waveColor, abs(wave1 + wave2)), 1.0);
}
`

// Cutout tints the sprite by the vertex color and drops nearly
// transparent texels instead of blending them.
var Cutout = `#version 330
in vec2 fragTexCoord;
in vec4 fragColor;

uniform sampler2D texture0;
uniform vec4 colDiffuse;

out vec4 finalColor;

void main() {
    vec4 texel = texture(texture0, fragTexCoord);
    vec4 color = vec4(texel.rgb * fragColor.rgb * colDiffuse.rgb, texel.a);
    if (color.a < ` + strconv.FormatFloat(CutoutAlpha, 'f', -1, 64) + `) discard;
    finalColor = color;
}
`
