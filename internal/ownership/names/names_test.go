package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"José Pérez":        "jose perez",
		"  MARÍA  Gómez  ":  "maria  gomez",
		"Peña-Nieto":        "penanieto",
		"O'Brien":           "obrien",
		"Núñez":             "nunez",
		"123 Ana 456":       "ana",
		"":                  "",
		"ÁÉÍÓÚ àèìòù äëïöü": "aeiou aeiou aeiou",
	}
	for input, want := range cases {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, Normalize(input))
		})
	}
}

func TestMatch(t *testing.T) {
	t.Run("reflexive under accents and case", func(t *testing.T) {
		assert.True(t, Match("José Pérez", "jose perez"))
		assert.True(t, Match("MARÍA FERNANDA GÓMEZ", "Maria Fernanda Gomez"))
	})

	t.Run("order-insensitive for full containment", func(t *testing.T) {
		assert.True(t, Match("Ana Maria Torres", "Torres Ana Maria"))
	})

	t.Run("registry name with extra words tolerated", func(t *testing.T) {
		assert.True(t, Match("Carlos Andres Ramirez Duque", "Carlos Ramirez"))
	})

	t.Run("user word absent from registry rejected", func(t *testing.T) {
		assert.False(t, Match("Carlos Ramirez", "Carlos Gomez"))
	})

	t.Run("user name with extra word rejected", func(t *testing.T) {
		assert.False(t, Match("Carlos Ramirez", "Carlos Andres Ramirez"))
	})

	t.Run("short particles ignored", func(t *testing.T) {
		assert.True(t, Match("Maria del Pilar Rodriguez", "Maria Rodriguez de"))
	})

	t.Run("partial word containment counts", func(t *testing.T) {
		// "fernanda" contains "fernan"; one-directional containment accepts it.
		assert.True(t, Match("Fernan Gomez", "Fernanda Gomez"))
	})

	t.Run("only short tokens never match", func(t *testing.T) {
		assert.False(t, Match("Carlos Ramirez", "a b cd"))
		assert.False(t, Match("Carlos Ramirez", "de la"))
	})

	t.Run("empty names never match", func(t *testing.T) {
		assert.False(t, Match("", "Carlos Ramirez"))
		assert.False(t, Match("Carlos Ramirez", ""))
		assert.False(t, Match("", ""))
	})

	t.Run("punctuation-only difference matches", func(t *testing.T) {
		assert.True(t, Match("Ana-Maria Lopez", "Anamaria Lopez"))
	})
}
