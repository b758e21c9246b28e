package memfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
)

var (
	errNoDepth     = errors.New("memfile: missing DEPTH")
	errNoWidth     = errors.New("memfile: missing WIDTH")
	errNoContent   = errors.New("memfile: missing CONTENT BEGIN")
	errNoEnd       = errors.New("memfile: missing END")
	errRange       = errors.New("memfile: address ranges are not supported")
	errBadAddress  = errors.New("memfile: address out of range")
	errBadEntry    = errors.New("memfile: malformed content entry")
	errBadDeclared = errors.New("memfile: malformed declaration")
	errTooDeep     = errors.New("memfile: memory is too deep")
)

func stripComment(line, marker string) string {
	if i := strings.Index(line, marker); i >= 0 {
		return line[:i]
	}
	return line
}

func parseWord(s string, base, width int) (uint16, error) {
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("memfile: bad value %q: %w", s, err)
	}
	if v >= 1<<uint(width) {
		return 0, fmt.Errorf("memfile: value %q does not fit in %d bits", s, width)
	}
	return uint16(v), nil
}

// DecodeHex reads a $readmemh word list from r. Each word must fit in width
// bits. Blank lines and // comments are ignored, and @ directives move the
// load address.
func DecodeHex(r io.Reader, width int) (*Memory, error) {
	m := &Memory{Width: width}
	if err := m.validate(); err != nil {
		return nil, err
	}

	var addr int
	s := bufio.NewScanner(r)
	for s.Scan() {
		for _, field := range strings.Fields(stripComment(s.Text(), "//")) {
			if strings.HasPrefix(field, "@") {
				a, err := strconv.ParseUint(field[1:], 16, 32)
				if err != nil {
					return nil, fmt.Errorf("memfile: bad address %q: %w", field, err)
				}
				addr = int(a)
				continue
			}

			if addr >= maxDepth {
				return nil, fmt.Errorf("%w: address 0x%X", errTooDeep, addr)
			}
			w, err := parseWord(field, 16, width)
			if err != nil {
				return nil, err
			}
			if n := addr + 1 - len(m.Words); n > 0 {
				m.Words = append(m.Words, make([]uint16, n)...)
			}
			m.Words[addr] = w
			addr++
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return m, nil
}

func radix(s string) (int, error) {
	switch strings.ToUpper(s) {
	case "BIN":
		return 2, nil
	case "OCT":
		return 8, nil
	case "DEC", "UNS":
		return 10, nil
	case "HEX":
		return 16, nil
	}
	return 0, fmt.Errorf("memfile: unsupported radix %q", s)
}

type decoder struct {
	depth, width int
	addrBase     int
	dataBase     int

	m *Memory
}

func (d *decoder) declare(stmt string) error {
	kv := strings.SplitN(stmt, "=", 2)
	if len(kv) != 2 {
		return fmt.Errorf("%w: %q", errBadDeclared, stmt)
	}
	key := strings.ToUpper(strings.TrimSpace(kv[0]))
	value := strings.TrimSpace(kv[1])

	var err error
	switch key {
	case "DEPTH":
		d.depth, err = strconv.Atoi(value)
	case "WIDTH":
		d.width, err = strconv.Atoi(value)
	case "ADDRESS_RADIX":
		d.addrBase, err = radix(value)
	case "DATA_RADIX":
		d.dataBase, err = radix(value)
	default:
		return fmt.Errorf("%w: unknown key %q", errBadDeclared, key)
	}
	return err
}

func (d *decoder) begin() error {
	switch {
	case d.depth <= 0:
		return errNoDepth
	case d.width <= 0:
		return errNoWidth
	case d.depth > maxDepth:
		return fmt.Errorf("%w: DEPTH = %d", errTooDeep, d.depth)
	}

	d.m = &Memory{Width: d.width, Words: make([]uint16, d.depth)}
	return d.m.validate()
}

func (d *decoder) entry(stmt string) error {
	parts := strings.SplitN(stmt, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: %q", errBadEntry, stmt)
	}

	a := strings.TrimSpace(parts[0])
	if strings.HasPrefix(a, "[") {
		return errRange
	}
	addr, err := strconv.ParseUint(a, d.addrBase, 32)
	if err != nil {
		return fmt.Errorf("memfile: bad address %q: %w", a, err)
	}

	values := strings.Fields(parts[1])
	if len(values) == 0 {
		return fmt.Errorf("%w: %q", errBadEntry, stmt)
	}
	for i, v := range values {
		if int(addr)+i >= d.depth {
			return fmt.Errorf("%w: %d", errBadAddress, int(addr)+i)
		}
		w, err := parseWord(v, d.dataBase, d.width)
		if err != nil {
			return err
		}
		d.m.Words[int(addr)+i] = w
	}
	return nil
}

// DecodeMIF reads a Memory Initialization File from r. Addresses that are not
// listed in the CONTENT block are zero.
func DecodeMIF(r io.Reader) (*Memory, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, line := range strings.Split(string(b), "\n") {
		sb.WriteString(stripComment(line, "--"))
		sb.WriteByte('\n')
	}

	d := decoder{addrBase: 10, dataBase: 16}
	inContent := false

	for _, stmt := range strings.Split(sb.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if !inContent {
			fields := strings.Fields(stmt)
			if strings.ToUpper(fields[0]) != "CONTENT" {
				if err := d.declare(stmt); err != nil {
					return nil, err
				}
				continue
			}
			if len(fields) < 2 || strings.ToUpper(fields[1]) != "BEGIN" {
				return nil, errNoContent
			}
			if err := d.begin(); err != nil {
				return nil, err
			}
			inContent = true

			// The first entry shares a statement with CONTENT BEGIN
			stmt = strings.TrimSpace(strings.Join(fields[2:], " "))
			if stmt == "" {
				continue
			}
		}

		if strings.ToUpper(stmt) == "END" {
			return d.m, nil
		}
		if err := d.entry(stmt); err != nil {
			return nil, err
		}
	}

	if !inContent {
		return nil, errNoContent
	}
	return nil, errNoEnd
}
