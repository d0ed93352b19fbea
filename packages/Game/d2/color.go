package d2

// RGBA32 is a color as the game's renderers consume it. The byte order of the
// packed form depends on the renderer, so each packing has its own pair.
type RGBA32 struct {
	R, G, B, A uint8
}

func FromRGBA(v uint32) RGBA32 {
	return RGBA32{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

func FromBGRA(v uint32) RGBA32 {
	return RGBA32{B: uint8(v >> 24), G: uint8(v >> 16), R: uint8(v >> 8), A: uint8(v)}
}

func FromARGB(v uint32) RGBA32 {
	return RGBA32{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func FromABGR(v uint32) RGBA32 {
	return RGBA32{A: uint8(v >> 24), B: uint8(v >> 16), G: uint8(v >> 8), R: uint8(v)}
}

func pack(a, b, c, d uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d)
}

func (c RGBA32) ToRGBA() uint32 { return pack(c.R, c.G, c.B, c.A) }
func (c RGBA32) ToBGRA() uint32 { return pack(c.B, c.G, c.R, c.A) }
func (c RGBA32) ToARGB() uint32 { return pack(c.A, c.R, c.G, c.B) }
func (c RGBA32) ToABGR() uint32 { return pack(c.A, c.B, c.G, c.R) }
