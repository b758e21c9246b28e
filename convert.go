package spritemem

import (
	"image/png"
	"os"

	"github.com/SwapBan/spritemem/memfile"
	"github.com/SwapBan/spritemem/rgb565"
	"github.com/SwapBan/spritemem/sprite"
)

func toMemory(width int, words []rgb565.Color) *memfile.Memory {
	m := &memfile.Memory{Width: width, Words: make([]uint16, len(words))}
	for i, w := range words {
		m.Words[i] = uint16(w)
	}
	return m
}

func fromMemory(m *memfile.Memory) []rgb565.Color {
	words := make([]rgb565.Color, len(m.Words))
	for i, w := range m.Words {
		words[i] = rgb565.Color(w)
	}
	return words
}

func writeMemory(file string, f memfile.Format, m *memfile.Memory) error {
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := memfile.Encode(out, f, m); err != nil {
		return err
	}
	return out.Close()
}

func loadWords(file string, mode sprite.Mode) ([]rgb565.Color, error) {
	m, err := sprite.Load(file)
	if err != nil {
		return nil, err
	}
	return sprite.Words(sprite.Normalize(m), mode)
}

// Convert reads the image in, resizes it to a sprite and writes its RGB565
// words to out in format f. It returns the number of words written.
func Convert(in, out string, mode sprite.Mode, f memfile.Format) (int, error) {
	words, err := loadWords(in, mode)
	if err != nil {
		return 0, err
	}

	if err := writeMemory(out, f, toMemory(16, words)); err != nil {
		return 0, err
	}
	return len(words), nil
}

// ConvertHex writes in as a $readmemh word list, replacing transparent pixels
// with sprite.Background.
func ConvertHex(in, out string) (int, error) {
	return Convert(in, out, sprite.ModeRGBA, memfile.Hex)
}

// ConvertMIF writes in as a Memory Initialization File, ignoring alpha.
func ConvertMIF(in, out string) (int, error) {
	return Convert(in, out, sprite.ModeRGB, memfile.MIF)
}

// Preview renders the sprite memory file in as a PNG image written to out.
// The format of in is taken from its extension.
func Preview(in, out string) error {
	f, err := memfile.FormatFromPath(in)
	if err != nil {
		return err
	}

	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()

	m, err := memfile.Decode(r, f, 16)
	if err != nil {
		return err
	}

	img, err := sprite.Render(fromMemory(m))
	if err != nil {
		return err
	}

	w, err := os.Create(out)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := png.Encode(w, img); err != nil {
		return err
	}
	return w.Close()
}

// Palette converts in to an indexed sprite: a palette memory of
// sprite.PaletteSize RGB565 words and an index memory of sprite.Size 4-bit
// words, written to paletteOut and indexOut in format f.
func Palette(in, paletteOut, indexOut string, f memfile.Format) error {
	words, err := loadWords(in, sprite.ModeRGBA)
	if err != nil {
		return err
	}

	palette, indices, err := sprite.Indexed(words)
	if err != nil {
		return err
	}

	if err := writeMemory(paletteOut, f, toMemory(16, palette)); err != nil {
		return err
	}

	im := &memfile.Memory{Width: sprite.IndexWidth, Words: make([]uint16, len(indices))}
	for i, idx := range indices {
		im.Words[i] = uint16(idx)
	}
	return writeMemory(indexOut, f, im)
}
