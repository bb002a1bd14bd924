package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPlate(t *testing.T) {
	valid := []string{
		"ABC123",
		"abc123", // case-insensitive
		"XYZ99A", // motorcycle style: trailing letter
		"  ABC123  ",
		"aBc12z",
	}
	for _, plate := range valid {
		t.Run("valid "+plate, func(t *testing.T) {
			assert.True(t, IsValidPlate(plate))
		})
	}

	invalid := []string{
		"",
		"AB1234",  // only 2 leading letters
		"AB123",   // 5 chars
		"ABC1234", // 7 chars
		"ABCD23",  // letter where digit expected
		"AB C123", // inner space survives trimming
		"ABC12-",  // punctuation in final position
		"1BC123",  // digit where letter expected
		"ÁBC123",  // non-ASCII letter
	}
	for _, plate := range invalid {
		t.Run("invalid "+plate, func(t *testing.T) {
			assert.False(t, IsValidPlate(plate))
		})
	}
}

func TestIsValidDocumentNumber(t *testing.T) {
	valid := []string{
		"123456",       // lower bound
		"123456789012", // upper bound
		"000123",       // leading zeros preserved
	}
	for _, doc := range valid {
		t.Run("valid "+doc, func(t *testing.T) {
			assert.True(t, IsValidDocumentNumber(doc))
		})
	}

	invalid := []string{
		"",
		"12345",          // 5 digits
		"1234567890123",  // 13 digits
		"12345678901234", // 14 digits
		"12345a",         // non-digit
		" 123456",        // no stripping, space is invalid
		"123.456",        // punctuation is invalid
	}
	for _, doc := range invalid {
		t.Run("invalid "+doc, func(t *testing.T) {
			assert.False(t, IsValidDocumentNumber(doc))
		})
	}
}

func TestCanonicalPlate(t *testing.T) {
	assert.Equal(t, "ABC123", CanonicalPlate(" abc123 "))
}
