/*
Package memfile implements encoders and decoders for the two text formats
used to initialize FPGA block memories with sprite data.

The hex format is the plain word list read by the Verilog $readmemh task: one
word per line, zero padded uppercase hexadecimal digits and nothing else.

The MIF format is the Altera Memory Initialization File. A short preamble
declares the depth, width and radixes, followed by a CONTENT block holding one
"address : value;" line per word and a closing END; line. Addresses are
written in decimal and values in zero padded lowercase hexadecimal.
*/
package memfile

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const (
	maxWidth = 16
	// Largest memory a file may describe, in words
	maxDepth = 1 << 20
)

var (
	errBadWidth  = errors.New("memfile: width must be between 1 and 16 bits")
	errBadFormat = errors.New("memfile: unknown format")
)

// Memory is a word addressed memory image. The depth of the memory is the
// number of words.
type Memory struct {
	// Width is the size of each word in bits
	Width int
	Words []uint16
}

// Depth returns the number of words in the memory.
func (m *Memory) Depth() int {
	return len(m.Words)
}

// digits returns how many hex digits are needed to hold one word.
func (m *Memory) digits() int {
	return (m.Width + 3) >> 2
}

func (m *Memory) validate() error {
	if m.Width < 1 || m.Width > maxWidth {
		return errBadWidth
	}
	limit := uint32(1) << uint(m.Width)
	for i, w := range m.Words {
		if uint32(w) >= limit {
			return fmt.Errorf("memfile: word %d (0x%X) does not fit in %d bits", i, w, m.Width)
		}
	}
	return nil
}

// Format selects one of the supported text formats.
type Format int

const (
	// Hex is the $readmemh word list
	Hex Format = iota
	// MIF is the Altera Memory Initialization File
	MIF
)

func (f Format) String() string {
	switch f {
	case Hex:
		return "hex"
	case MIF:
		return "mif"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "hex", "mem":
		return Hex, nil
	case "mif":
		return MIF, nil
	}
	return 0, fmt.Errorf("%w: %q", errBadFormat, s)
}

// FormatFromPath guesses the Format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes m to w in format f.
func Encode(w io.Writer, f Format, m *Memory) error {
	switch f {
	case Hex:
		return EncodeHex(w, m)
	case MIF:
		return EncodeMIF(w, m)
	}
	return errBadFormat
}

// Decode reads a memory in format f from r. The width is only used by the
// hex format as MIF files declare their own.
func Decode(r io.Reader, f Format, width int) (*Memory, error) {
	switch f {
	case Hex:
		return DecodeHex(r, width)
	case MIF:
		return DecodeMIF(r)
	}
	return nil, errBadFormat
}
