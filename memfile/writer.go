package memfile

import (
	"bufio"
	"fmt"
	"io"
)

type encoder struct {
	w *bufio.Writer
	m *Memory
}

func (e *encoder) encodeHex() error {
	n := e.m.digits()
	for _, word := range e.m.Words {
		if _, err := fmt.Fprintf(e.w, "%0*X\n", n, word); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encodeMIF() error {
	if _, err := fmt.Fprintf(e.w, "DEPTH = %d;\nWIDTH = %d;\nADDRESS_RADIX = DEC;\nDATA_RADIX = HEX;\nCONTENT\nBEGIN\n", e.m.Depth(), e.m.Width); err != nil {
		return err
	}

	n := e.m.digits()
	for i, word := range e.m.Words {
		if _, err := fmt.Fprintf(e.w, "%d : %0*x;\n", i, n, word); err != nil {
			return err
		}
	}

	_, err := io.WriteString(e.w, "END;\n")
	return err
}

// EncodeHex writes m to w as a $readmemh word list.
func EncodeHex(w io.Writer, m *Memory) error {
	if err := m.validate(); err != nil {
		return err
	}

	e := encoder{w: bufio.NewWriter(w), m: m}
	if err := e.encodeHex(); err != nil {
		return err
	}
	return e.w.Flush()
}

// EncodeMIF writes m to w as a Memory Initialization File.
func EncodeMIF(w io.Writer, m *Memory) error {
	if err := m.validate(); err != nil {
		return err
	}

	e := encoder{w: bufio.NewWriter(w), m: m}
	if err := e.encodeMIF(); err != nil {
		return err
	}
	return e.w.Flush()
}
