package tracker

import "regexp"

// IdentifierKind classifies the shape of a raw team identifier.
type IdentifierKind int

const (
	// KindUUID is a canonical UUID; it is trusted as an opaque reference
	// and passed through without a lookup.
	KindUUID IdentifierKind = iota
	// KindKey is a short team key like "ENG" or "ABC1".
	KindKey
	// KindName is a full team name like "Engineering".
	KindName
)

func (k IdentifierKind) String() string {
	switch k {
	case KindUUID:
		return "uuid"
	case KindKey:
		return "key"
	default:
		return "name"
	}
}

// uuidPattern matches the canonical 8-4-4-4-12 hexadecimal grouping only.
// Braced, URN-prefixed, and bare 32-hex forms deliberately do not match;
// those shapes are never produced by the API.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ClassifyIdentifier infers what kind of team identifier raw is from its
// shape alone. No lookup is performed here.
func ClassifyIdentifier(raw string) IdentifierKind {
	if uuidPattern.MatchString(raw) {
		return KindUUID
	}
	if isAlphanumeric(raw) {
		return KindKey
	}
	return KindName
}

// isAlphanumeric reports whether s is non-empty and consists solely of
// ASCII letters and digits. Team keys may contain digits ("ABC1", "42X"),
// so this must not be a letters-only check: an earlier all-caps-letters
// rule mis-routed keys with digits into the name-lookup path.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
