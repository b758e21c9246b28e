/*
Package sprite loads images and turns them into the fixed 32 by 32 grid of
RGB565 words stored in sprite memories.

Any image the registered decoders understand is accepted. It is stretched to
32 by 32 pixels with nearest neighbor sampling, so the aspect ratio is not
preserved, and then scanned in row-major order: word i holds the pixel at
(i % 32, i / 32).
*/
package sprite

import (
	"errors"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/SwapBan/spritemem/rgb565"
	"github.com/disintegration/gift"
)

const (
	// Width of a sprite in pixels
	Width = 32
	// Height of a sprite in pixels
	Height = 32
	// Size is the number of words in a sprite
	Size = Width * Height
)

// Background replaces fully transparent pixels when converting with
// ModeRGBA.
var Background = color.NRGBA{0xff, 0x00, 0xff, 0xff}

var (
	errWrongSize  = errors.New("sprite: image is wrong size")
	errWrongWords = errors.New("sprite: wrong number of words")
)

// Mode controls how the alpha channel is treated.
type Mode int

const (
	// ModeRGB ignores alpha and always uses the pixel's own color
	ModeRGB Mode = iota
	// ModeRGBA substitutes Background for any pixel with zero alpha. Any
	// other alpha value is treated as fully opaque.
	ModeRGBA
)

func (m Mode) String() string {
	if m == ModeRGBA {
		return "rgba"
	}
	return "rgb"
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	return m, err
}

// Load opens and decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Normalize resizes m to exactly Width by Height pixels using nearest
// neighbor sampling.
func Normalize(m image.Image) *image.NRGBA {
	g := gift.New(gift.Resize(Width, Height, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(m.Bounds()))
	g.Draw(dst, m)
	return dst
}

func pixelAt(m image.Image, x, y int) color.NRGBA {
	if n, ok := m.(*image.NRGBA); ok {
		return n.NRGBAAt(x, y)
	}
	return color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
}

// Quantize converts a single pixel to RGB565 according to mode.
func Quantize(c color.NRGBA, mode Mode) rgb565.Color {
	if mode == ModeRGBA && c.A == 0 {
		c = Background
	}
	return rgb565.Pack(c.R, c.G, c.B)
}

// Words scans the Width by Height image m in row-major order and returns one
// RGB565 word per pixel.
func Words(m image.Image, mode Mode) ([]rgb565.Color, error) {
	b := m.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, errWrongSize
	}

	words := make([]rgb565.Color, 0, Size)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			words = append(words, Quantize(pixelAt(m, x, y), mode))
		}
	}
	return words, nil
}

// Render is the inverse of Words, it draws the sprite held in words as an
// opaque image.
func Render(words []rgb565.Color) (*image.NRGBA, error) {
	if len(words) != Size {
		return nil, errWrongWords
	}

	m := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	for i, w := range words {
		r, g, b := w.Channels()
		m.SetNRGBA(i%Width, i/Width, color.NRGBA{r, g, b, 0xff})
	}
	return m, nil
}
