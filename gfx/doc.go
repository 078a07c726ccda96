// Package gfx defines the small GPU surface the text renderer needs:
// alpha and render textures, two fragment programs and textured
// triangle draws with an MVP transform.
//
// Backends live in subpackages: [github.com/andrewrk/genesis/gfx/ebitengfx]
// draws with Ebitengine shaders, while [github.com/andrewrk/genesis/gfx/softgfx]
// composites on CPU images for headless rendering and tests.
package gfx
