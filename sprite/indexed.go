package sprite

import (
	"image/color"

	"github.com/SwapBan/spritemem/rgb565"
	"github.com/ericpauley/go-quantize/quantize"
)

// PaletteSize is the number of entries in an indexed sprite palette.
const PaletteSize = 16

// IndexWidth is the number of bits needed for each palette index.
const IndexWidth = 4

func uniqueWords(words []rgb565.Color) []rgb565.Color {
	seen := make(map[rgb565.Color]struct{})
	var p []rgb565.Color
	for _, w := range words {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			p = append(p, w)
		}
	}
	return p
}

// Indexed reduces a sprite to at most PaletteSize colors. If the sprite
// already uses few enough colors they are kept exactly, in the order they
// first appear, otherwise a median cut palette is built and each pixel is
// mapped to its closest entry. The returned palette is always padded to
// PaletteSize entries.
func Indexed(words []rgb565.Color) ([]rgb565.Color, []uint8, error) {
	m, err := Render(words)
	if err != nil {
		return nil, nil, err
	}

	palette := uniqueWords(words)
	if len(palette) > PaletteSize {
		q := quantize.MedianCutQuantizer{}
		palette = palette[:0]
		for _, c := range q.Quantize(make(color.Palette, 0, PaletteSize), m) {
			palette = append(palette, rgb565.Model.Convert(c).(rgb565.Color))
		}
		palette = uniqueWords(palette)
		if len(palette) > PaletteSize {
			palette = palette[:PaletteSize]
		}
	}

	cp := make(color.Palette, len(palette))
	for i, c := range palette {
		cp[i] = c
	}

	indices := make([]uint8, len(words))
	for i, w := range words {
		indices[i] = uint8(cp.Index(w))
	}

	// Pad palette to PaletteSize
	for len(palette) < PaletteSize {
		palette = append(palette, 0)
	}

	return palette, indices, nil
}
