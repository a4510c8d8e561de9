package titleid

import "strconv"

// Lookup resolves a four-character code string to a human-readable title name.
// A nil Lookup means no name database was supplied.
type Lookup interface {
	Lookup(code string) (string, bool)
}

// MapLookup adapts a plain map to Lookup.
type MapLookup map[string]string

// Lookup implements Lookup.
func (m MapLookup) Lookup(code string) (string, bool) {
	name, ok := m[code]
	return name, ok
}

// ResolveName returns the display name for code. Without a lookup the name is
// empty; a miss falls back to the IOS convention for small codes and "????"
// otherwise.
func ResolveName(code uint32, lookup Lookup) string {
	if lookup == nil {
		return ""
	}
	if name, ok := lookup.Lookup(CodeString(code)); ok {
		return name
	}
	if code < iosCodeLimit {
		return "IOS " + strconv.FormatUint(uint64(code), 10)
	}
	return "????"
}

// NameSuffix renders the " - name" tail of a listing line.
func NameSuffix(code uint32, lookup Lookup) string {
	if lookup == nil {
		return ""
	}
	return " - " + ResolveName(code, lookup)
}
