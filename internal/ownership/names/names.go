// Package names decides whether two free-text person names plausibly refer
// to the same individual. Registries record names with inconsistent accents,
// casing, punctuation, and word order, so exact comparison is useless; full
// fuzzy matching would be too permissive for an ownership check. The rule
// here sits in between and is deliberately one-directional.
package names

import "strings"

// minSubstantiveLen is the shortest word length that participates in
// matching. Shorter tokens (particles like "de", "la") are ignored.
const minSubstantiveLen = 3

// Match reports whether userName plausibly denotes the person recorded as
// registryName.
//
// Both names are normalized (lowercased, accents folded, everything that is
// not a letter or whitespace stripped). Equal normalized strings match
// immediately. Otherwise every substantive user word (length >= 3) must be a
// substring of some registry word or contain some registry word; particles
// are ignored. The check is one-directional: a registry name with extra
// words is tolerated, a user name with an unmatched substantive word is not.
//
// A user name with no substantive words at all does not match. Without that
// requirement a name like "a b c" would trivially match any registry record,
// which is an ownership bypass, not a tolerance.
func Match(registryName, userName string) bool {
	registry := Normalize(registryName)
	user := Normalize(userName)

	if registry == "" || user == "" {
		return false
	}
	if registry == user {
		return true
	}

	registryWords := strings.Fields(registry)
	substantive := 0
	for _, word := range strings.Fields(user) {
		if len(word) < minSubstantiveLen {
			continue
		}
		substantive++
		if !wordMatches(word, registryWords) {
			return false
		}
	}
	return substantive > 0
}

// wordMatches reports whether the user word overlaps any registry word in
// either containment direction.
func wordMatches(userWord string, registryWords []string) bool {
	for _, rw := range registryWords {
		if strings.Contains(rw, userWord) || strings.Contains(userWord, rw) {
			return true
		}
	}
	return false
}

// Normalize lowercases the name, folds spanish diacritics onto their base
// vowels (and ñ onto n), and strips every rune that is not a lowercase ASCII
// letter or whitespace. The result is trimmed.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		r = foldAccent(r)
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n':
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func foldAccent(r rune) rune {
	switch r {
	case 'á', 'à', 'ä', 'â':
		return 'a'
	case 'é', 'è', 'ë', 'ê':
		return 'e'
	case 'í', 'ì', 'ï', 'î':
		return 'i'
	case 'ó', 'ò', 'ö', 'ô':
		return 'o'
	case 'ú', 'ù', 'ü', 'û':
		return 'u'
	case 'ñ':
		return 'n'
	}
	return r
}
