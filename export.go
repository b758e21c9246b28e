package spritemem

import (
	"fmt"

	"github.com/SwapBan/spritemem/memfile"
	"github.com/SwapBan/spritemem/rgb565"
	"github.com/SwapBan/spritemem/sprite"
)

// Export writes the library sprite called name to out in format f.
func (m *SpriteMem) Export(name, out string, f memfile.Format) error {
	words, err := m.db.FindSprite(name)
	if err != nil {
		return err
	}
	if words == nil {
		return fmt.Errorf("spritemem: no sprite named %q", name)
	}

	return writeMemory(out, f, toMemory(16, words))
}

// ExportBank writes every library sprite, sorted by name, to out as one
// memory. Sprite n starts at word n*sprite.Size. It returns the names in
// bank order.
func (m *SpriteMem) ExportBank(out string, f memfile.Format) ([]string, error) {
	names, err := m.db.Names()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("spritemem: library is empty")
	}

	bank := make([]rgb565.Color, 0, len(names)*sprite.Size)
	for _, name := range names {
		words, err := m.db.FindSprite(name)
		if err != nil {
			return nil, err
		}
		m.logger.Printf("%s at address %d\n", name, len(bank))
		bank = append(bank, words...)
	}

	if err := writeMemory(out, f, toMemory(16, bank)); err != nil {
		return nil, err
	}
	return names, nil
}
