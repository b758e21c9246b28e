package spritemem

import (
	"bytes"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/SwapBan/spritemem/rgb565"
	"github.com/SwapBan/spritemem/sprite"
	_ "github.com/mattn/go-sqlite3"
)

var errBadBlob = errors.New("spritemem: stored sprite has wrong length")

// SpriteDB is a library of converted sprites backed by a sqlite database.
type SpriteDB struct {
	db *sql.DB
}

// NewSpriteDB opens, creating if necessary, the sprite library in file.
func NewSpriteDB(file string) (*SpriteDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS sprite (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, sha1 TEXT NOT NULL, words BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &SpriteDB{
		db: db,
	}, nil
}

func (db *SpriteDB) Close() error {
	return db.db.Close()
}

func marshalWords(words []rgb565.Color) ([]byte, error) {
	b := new(bytes.Buffer)
	if err := binary.Write(b, binary.BigEndian, words); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func unmarshalWords(b []byte) ([]rgb565.Color, error) {
	if len(b) != sprite.Size*2 {
		return nil, errBadBlob
	}
	words := make([]rgb565.Color, sprite.Size)
	if err := binary.Read(bytes.NewReader(b), binary.BigEndian, words); err != nil {
		return nil, err
	}
	return words, nil
}

// HasSprite reports whether a sprite called name with the given source
// checksum is already stored.
func (db *SpriteDB) HasSprite(name, sha string) (bool, error) {
	var id int64
	switch err := db.db.QueryRow("SELECT id FROM sprite WHERE name = ? AND sha1 = ?", name, sha).Scan(&id); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return true, nil
	default:
		return false, err
	}
}

// AddSprite stores words under name, replacing any existing sprite with the
// same name.
func (db *SpriteDB) AddSprite(name, sha string, words []rgb565.Color) error {
	if len(words) != sprite.Size {
		return errBadBlob
	}

	b, err := marshalWords(words)
	if err != nil {
		return err
	}

	if _, err := db.db.Exec("INSERT OR REPLACE INTO sprite (name, sha1, words) VALUES (?, ?, ?)", name, sha, b); err != nil {
		return err
	}
	return nil
}

// FindSprite returns the words of the sprite called name, or nil if there is
// no such sprite.
func (db *SpriteDB) FindSprite(name string) ([]rgb565.Color, error) {
	var b []byte
	switch err := db.db.QueryRow("SELECT words FROM sprite WHERE name = ?", name).Scan(&b); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return unmarshalWords(b)
	default:
		return nil, err
	}
}

// Names returns the names of every stored sprite in sorted order.
func (db *SpriteDB) Names() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM sprite ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
