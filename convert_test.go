package spritemem

import (
	"image"
	"image/color"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SwapBan/spritemem/memfile"
	"github.com/SwapBan/spritemem/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, file string, m image.Image) {
	t.Helper()

	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
}

func solidPNG(t *testing.T, file string, w, h int, c color.NRGBA) {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	writePNG(t, file, m)
}

func readLines(t *testing.T, file string) []string {
	t.Helper()

	b, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(b), "\n"))
	return strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
}

func TestConvertHexSolidRed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "red.png")
	out := filepath.Join(dir, "red.hex")
	solidPNG(t, in, 2, 2, color.NRGBA{255, 0, 0, 255})

	n, err := ConvertHex(in, out)
	require.NoError(t, err)
	assert.Equal(t, sprite.Size, n)

	lines := readLines(t, out)
	require.Len(t, lines, 1024)
	for _, line := range lines {
		assert.Equal(t, "F800", line)
	}
}

func TestConvertHexTransparent(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "clear.png")
	out := filepath.Join(dir, "clear.hex")
	solidPNG(t, in, 40, 20, color.NRGBA{0, 0, 0, 0})

	_, err := ConvertHex(in, out)
	require.NoError(t, err)

	for _, line := range readLines(t, out) {
		assert.Equal(t, "F81F", line)
	}
}

func TestConvertMIFSolidRed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sprite.png")
	out := filepath.Join(dir, "sprite_output.mif")
	solidPNG(t, in, 2, 2, color.NRGBA{255, 0, 0, 255})

	n, err := ConvertMIF(in, out)
	require.NoError(t, err)
	assert.Equal(t, 1024, n)

	lines := readLines(t, out)
	require.Len(t, lines, 6+1024+1)
	assert.Equal(t, "DEPTH = 1024;", lines[0])
	assert.Equal(t, "WIDTH = 16;", lines[1])
	assert.Equal(t, "ADDRESS_RADIX = DEC;", lines[2])
	assert.Equal(t, "DATA_RADIX = HEX;", lines[3])
	assert.Equal(t, "CONTENT", lines[4])
	assert.Equal(t, "BEGIN", lines[5])
	assert.Equal(t, "0 : f800;", lines[6])
	assert.Equal(t, "1023 : f800;", lines[len(lines)-2])
	assert.Equal(t, "END;", lines[len(lines)-1])
}

func TestConvertMIFIgnoresAlpha(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sprite.png")
	out := filepath.Join(dir, "sprite.mif")
	solidPNG(t, in, 32, 32, color.NRGBA{0, 255, 0, 0})

	_, err := ConvertMIF(in, out)
	require.NoError(t, err)
	assert.Equal(t, "0 : 07e0;", readLines(t, out)[6])
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertHex(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.hex"))
	assert.Error(t, err)
	_, err = os.Stat(filepath.Join(dir, "out.hex"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, ioutil.WriteFile(bad, []byte("not a png"), 0644))
	_, err = ConvertMIF(bad, filepath.Join(dir, "out.mif"))
	assert.Error(t, err)

	in := filepath.Join(dir, "ok.png")
	solidPNG(t, in, 1, 1, color.NRGBA{1, 2, 3, 255})
	_, err = ConvertHex(in, filepath.Join(dir, "no", "such", "dir.hex"))
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, sprite.Width, sprite.Height))
	for y := 0; y < sprite.Height; y++ {
		for x := 0; x < sprite.Width; x++ {
			src.SetNRGBA(x, y, color.NRGBA{uint8(x << 3), uint8(y << 3), 0xf8, 0xff})
		}
	}
	in := filepath.Join(dir, "grad.png")
	writePNG(t, in, src)

	for _, ext := range []string{".hex", ".mif"} {
		mem := filepath.Join(dir, "grad"+ext)
		f, err := memfile.FormatFromPath(mem)
		require.NoError(t, err)
		_, err = Convert(in, mem, sprite.ModeRGBA, f)
		require.NoError(t, err)

		out := filepath.Join(dir, "preview"+ext+".png")
		require.NoError(t, Preview(mem, out))

		r, err := os.Open(out)
		require.NoError(t, err)
		m, err := png.Decode(r)
		r.Close()
		require.NoError(t, err)

		// Channels are already multiples of 8 so the preview is exact
		assert.Equal(t, src.Bounds(), m.Bounds())
		for y := 0; y < sprite.Height; y++ {
			for x := 0; x < sprite.Width; x++ {
				got := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				want := src.NRGBAAt(x, y)
				assert.Equal(t, want.R&0xf8, got.R&0xf8)
				assert.Equal(t, want.G&0xfc, got.G&0xfc)
				assert.Equal(t, want.B&0xf8, got.B&0xf8)
			}
		}
	}

	assert.Error(t, Preview(in, filepath.Join(dir, "x.png")))
}

func TestPalette(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	src.SetNRGBA(3, 3, color.NRGBA{0, 0, 255, 255})
	in := filepath.Join(dir, "dino.png")
	writePNG(t, in, src)

	pal := filepath.Join(dir, "dino_pal.mif")
	idx := filepath.Join(dir, "dino_idx.mif")
	require.NoError(t, Palette(in, pal, idx, memfile.MIF))

	r, err := os.Open(pal)
	require.NoError(t, err)
	pm, err := memfile.DecodeMIF(r)
	r.Close()
	require.NoError(t, err)
	assert.Equal(t, 16, pm.Width)
	require.Equal(t, sprite.PaletteSize, pm.Depth())
	assert.Equal(t, []uint16{0xffff, 0xf81f, 0x001f}, pm.Words[:3])

	r, err = os.Open(idx)
	require.NoError(t, err)
	im, err := memfile.DecodeMIF(r)
	r.Close()
	require.NoError(t, err)
	assert.Equal(t, sprite.IndexWidth, im.Width)
	require.Equal(t, sprite.Size, im.Depth())
	assert.Equal(t, uint16(0), im.Words[0])
	assert.Equal(t, uint16(1), im.Words[sprite.Width/2])
	assert.Equal(t, uint16(2), im.Words[sprite.Size-1])
}
