package progress

import (
	"database/sql"
	"errors"
	"fmt"
	"unicode"
)

// DefaultPIN is the parent PIN before one is set.
const DefaultPIN = "1234"

const pinKey = "parent_pin"

// ErrInvalidPIN is returned when a candidate PIN is not exactly 4 digits.
var ErrInvalidPIN = errors.New("PIN must be exactly 4 digits")

// PIN returns the stored parent PIN, or DefaultPIN if none was ever set
// (or the read failed).
func (s *Store) PIN() string {
	var pin string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, pinKey).Scan(&pin)
	if err == sql.ErrNoRows {
		return DefaultPIN
	}
	if err != nil {
		s.warn("read PIN", err)
		return DefaultPIN
	}
	return pin
}

// SetPIN overwrites the parent PIN.
func (s *Store) SetPIN(pin string) error {
	if !validPIN(pin) {
		return ErrInvalidPIN
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`,
		pinKey, pin,
	)
	if err != nil {
		return fmt.Errorf("store PIN: %w", err)
	}
	return nil
}

func validPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
