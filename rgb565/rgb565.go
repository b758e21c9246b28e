/*
Package rgb565 implements the packed 16-bit RGB565 color used by sprite
memories.

Each word is laid out as RRRRRGGGGGGBBBBB with red in the most significant
bits. Conversion from 8-bit channels simply truncates the low bits; there is
no rounding or dithering.
*/
package rgb565

import (
	"fmt"
	"image/color"
)

const (
	redBits   = 5
	greenBits = 6
	blueBits  = 5

	blueShift  = 0
	greenShift = blueShift + blueBits
	redShift   = greenShift + greenBits

	redMask   = 1<<redBits - 1
	greenMask = 1<<greenBits - 1
	blueMask  = 1<<blueBits - 1
)

// Color is a single RGB565 word. It implements the color.Color interface.
type Color uint16

// Pack truncates the 8-bit channels r, g and b to 5, 6 and 5 bits
// respectively and packs them into a Color.
func Pack(r, g, b uint8) Color {
	return Color(uint16(r&0xf8)<<8 | uint16(g&0xfc)<<3 | uint16(b>>3))
}

// Channels returns the 8-bit channels of c, with the missing low bits filled
// by replicating the high bits.
func (c Color) Channels() (r, g, b uint8) {
	r = uint8(c >> redShift & redMask)
	g = uint8(c >> greenShift & greenMask)
	b = uint8(c >> blueShift & blueMask)

	r = r<<(8-redBits) | r>>(2*redBits-8)
	g = g<<(8-greenBits) | g>>(2*greenBits-8)
	b = b<<(8-blueBits) | b>>(2*blueBits-8)
	return
}

// RGBA implements color.Color. The color is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.Channels()
	r = uint32(r8) | uint32(r8)<<8
	g = uint32(g8) | uint32(g8)<<8
	b = uint32(b8) | uint32(b8)<<8
	a = 0xffff
	return
}

func (c Color) String() string {
	return fmt.Sprintf("0x%04X", uint16(c))
}

// Model converts any color to a Color using its non-premultiplied channels.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pack(n.R, n.G, n.B)
})
