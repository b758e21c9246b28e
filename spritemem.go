/*
Package spritemem converts small images into 32 by 32 RGB565 sprite memories
for FPGA designs, either as a $readmemh word list or as an Altera Memory
Initialization File.

The one-shot conversions are Convert, ConvertHex and ConvertMIF. SpriteMem
additionally keeps a library of converted sprites so a whole sprite set can
be imported from a directory and written out as a single memory bank.
*/
package spritemem

import "log"

type SpriteMem struct {
	db     *SpriteDB
	logger *log.Logger
}

// New returns a SpriteMem using the sprite library in file.
func New(file string, logger *log.Logger) (*SpriteMem, error) {
	db, err := NewSpriteDB(file)
	if err != nil {
		return nil, err
	}

	return &SpriteMem{
		db:     db,
		logger: logger,
	}, nil
}

func (m *SpriteMem) Close() error {
	return m.db.Close()
}

// Names returns the names of every sprite in the library.
func (m *SpriteMem) Names() ([]string, error) {
	return m.db.Names()
}
