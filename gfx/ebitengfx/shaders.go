package ebitengfx

import "github.com/andrewrk/genesis/gfx"

// Kage sources for each gfx.ProgramKind. Alpha textures are uploaded
// with the coverage replicated on every channel, so reading the alpha
// channel is enough for the glyph program.
var shaderSources = map[gfx.ProgramKind][]byte{
	gfx.ProgramGlyph: []byte(`package main

var Color vec4

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	return Color * imageSrc0At(texCoord).a
}
`),
	gfx.ProgramTexture: []byte(`package main

func Fragment(position vec4, texCoord vec2, color vec4) vec4 {
	return imageSrc0At(texCoord)
}
`),
}
