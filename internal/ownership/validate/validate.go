// Package validate holds the pure format checks for plates and identity
// document numbers. Both are boolean predicates: no errors, no side effects,
// no transformation beyond uppercasing/trimming for the comparison itself.
package validate

import "strings"

// IsValidPlate reports whether the input is a well-formed colombian license
// plate after trimming and uppercasing: exactly 3 ASCII letters, 2 ASCII
// digits, and a final alphanumeric (motorcycle plates end in a letter, car
// plates in a digit). The canonical form is not returned; callers uppercase
// for themselves when they need it.
func IsValidPlate(plate string) bool {
	p := strings.ToUpper(strings.TrimSpace(plate))
	if len(p) != 6 {
		return false
	}
	for i := 0; i < 3; i++ {
		if p[i] < 'A' || p[i] > 'Z' {
			return false
		}
	}
	for i := 3; i < 5; i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	last := p[5]
	return (last >= 'A' && last <= 'Z') || (last >= '0' && last <= '9')
}

// IsValidDocumentNumber reports whether the raw input is 6 to 12 ASCII
// digits. No stripping is performed: spaces, dots, or dashes make the number
// invalid, and leading zeros are significant.
func IsValidDocumentNumber(doc string) bool {
	if len(doc) < 6 || len(doc) > 12 {
		return false
	}
	for i := 0; i < len(doc); i++ {
		if doc[i] < '0' || doc[i] > '9' {
			return false
		}
	}
	return true
}

// CanonicalPlate returns the uppercased, trimmed plate used as the registry
// lookup key. Callers must have checked IsValidPlate first.
func CanonicalPlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
